package fixture

import "ctf/internal/domain/entity"

// Default returns the built-in operator accounts and starter questions.
func Default() *entity.Fixtures {
	return &entity.Fixtures{
		Accounts: []entity.AccountFixture{
			{Username: "admin", Password: "admin123", Points: 0},
			{Username: "test", Password: "test123", Points: 0},
		},
		Questions: []entity.QuestionFixture{
			{
				Title:       "Hidden in Plain Sight",
				Description: "Find the hidden flag. Remember, not everything is as it seems.",
				Category:    "Steganography",
				Difficulty:  "Easy",
				Points:      100,
				Flag:        "flag{steg0_b3ginner}",
				Hint:        "The answer is right there",
			},
			{
				Title:       "SQL Injection Basics",
				Description: "Find the flag by exploiting a basic SQL injection vulnerability.",
				Category:    "Web Exploitation",
				Difficulty:  "Easy",
				Points:      100,
				Flag:        "flag{sql_injection_101}",
				Hint:        "Try using single quotes in the input field",
			},
			{
				Title:       "Basic Encryption",
				Description: "Decrypt this basic cipher to find the flag.",
				Category:    "Cryptography",
				Difficulty:  "Easy",
				Points:      150,
				Flag:        "flag{crypto_beginner}",
				Hint:        "Look up Caesar cipher",
			},
			{
				Title:       "Memory Analysis",
				Description: "Analyze this memory dump to find the flag.",
				Category:    "Forensics",
				Difficulty:  "Medium",
				Points:      200,
				Flag:        "flag{memory_hunter}",
				Hint:        "Check the process memory regions",
			},
		},
	}
}

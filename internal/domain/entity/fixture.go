package entity

// Fixtures is the declarative seed data applied by the seeder.
// Secrets are held in plaintext here and hashed at seed time.
type Fixtures struct {
	Accounts  []AccountFixture  `json:"accounts" yaml:"accounts"`
	Questions []QuestionFixture `json:"questions" yaml:"questions"`
}

// AccountFixture describes an operator account to create.
type AccountFixture struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Points   int    `json:"points" yaml:"points"`
}

// QuestionFixture describes a question to create.
type QuestionFixture struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"`
	Points      int    `json:"points" yaml:"points"`
	Flag        string `json:"flag" yaml:"flag"`
	Hint        string `json:"hint" yaml:"hint"`
}

package entity

import (
	"strconv"
	"time"
)

// QuestionLinkPrefix is prepended to a question's ID to form its link.
const QuestionLinkPrefix = "/question/"

// Question is a single CTF challenge.
type Question struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Difficulty  string
	Points      int
	FlagHash    string  // bcrypt hash of the flag.
	Hint        *string // nil when the question has no hint.
	Link        string  // Computed by the database from ID; read-only.
	CreatedAt   time.Time
}

// QuestionLink returns the link the database computes for a question ID.
func QuestionLink(id int64) string {
	return QuestionLinkPrefix + strconv.FormatInt(id, 10)
}

// HintCost is what revealing the hint costs: half the question's points, rounded down.
func (q *Question) HintCost() int {
	return q.Points / 2
}

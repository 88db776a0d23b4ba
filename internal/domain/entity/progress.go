package entity

import "time"

// SolvedQuestion records that a user captured a question's flag.
// A (UserID, QuestionID) pair appears at most once.
type SolvedQuestion struct {
	ID         int64
	UserID     int64
	QuestionID int64
	SolvedAt   time.Time
}

// UnlockedHint records that a user revealed a question's hint.
// A (UserID, QuestionID) pair appears at most once.
type UnlockedHint struct {
	ID         int64
	UserID     int64
	QuestionID int64
	UnlockedAt time.Time
}

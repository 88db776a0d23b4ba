package model

import "time"

// SolvedQuestionModel mirrors the 'solved_questions' table.
// (user_id, question_id) is unique.
type SolvedQuestionModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null"`
	QuestionID int64     `gorm:"not null"`
	SolvedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (SolvedQuestionModel) TableName() string {
	return "solved_questions"
}

// UnlockedHintModel mirrors the 'unlocked_hints' table.
// (user_id, question_id) is unique.
type UnlockedHintModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null"`
	QuestionID int64     `gorm:"not null"`
	UnlockedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UnlockedHintModel) TableName() string {
	return "unlocked_hints"
}

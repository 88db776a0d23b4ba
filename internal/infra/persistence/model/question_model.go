package model

import "time"

// QuestionModel mirrors the 'questions' table.
// Flag holds the bcrypt hash of the flag. Link is a virtual column generated
// by SQLite from the ID, so GORM only ever reads it.
type QuestionModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:text;unique;not null"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:text;not null"`
	Difficulty  string  `gorm:"type:text;not null"`
	Points      int     `gorm:"not null"`
	Flag        string  `gorm:"type:text;not null"`
	Hint        *string `gorm:"type:text"`
	Link        string  `gorm:"->"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

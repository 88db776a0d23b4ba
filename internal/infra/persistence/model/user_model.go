package model

import "time"

// UserModel mirrors the 'users' table. SQLite assigns the integer ID.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:text;unique;not null"`
	Password  string `gorm:"type:text;not null"`
	Points    int    `gorm:"default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

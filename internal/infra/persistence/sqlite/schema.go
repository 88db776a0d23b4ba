package sqlite

import (
	"context"

	"ctf/internal/domain/entity"
	"ctf/internal/domain/repository"
	"ctf/internal/errors"

	"gorm.io/gorm"
)

// schemaStatements is the fixed table set plus the question title key, applied in order.
// Questions use the title as natural key so reseeding cannot duplicate them.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		points INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT UNIQUE NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		points INTEGER NOT NULL,
		flag TEXT NOT NULL,
		hint TEXT,
		link TEXT GENERATED ALWAYS AS ('` + entity.QuestionLinkPrefix + `' || id) VIRTUAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS solved_questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		question_id INTEGER NOT NULL,
		solved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (question_id) REFERENCES questions(id),
		UNIQUE(user_id, question_id)
	)`,
	`CREATE TABLE IF NOT EXISTS unlocked_hints (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		question_id INTEGER NOT NULL,
		unlocked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (question_id) REFERENCES questions(id),
		UNIQUE(user_id, question_id)
	)`,
	// Files created before title became UNIQUE keep their old questions table;
	// the index gives them the same key. It fails if duplicates already exist.
	`CREATE UNIQUE INDEX IF NOT EXISTS questions_title_key ON questions(title)`,
}

type schemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository returns the SQLite schema bootstrapper.
func NewSchemaRepository(db *gorm.DB) repository.SchemaRepository {
	return &schemaRepository{db: db}
}

// EnsureSchema creates every table that does not exist yet.
func (r *schemaRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to execute schema statement: %s", stmt)
		}
	}

	return nil
}

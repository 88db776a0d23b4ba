package repository

import (
	"context"

	"ctf/internal/domain/entity"
)

// QuestionRepository defines the operations for question persistence.
type QuestionRepository interface {
	// Create persists a new question. It returns ErrQuestionAlreadyExists when the title is taken.
	// The link is computed by the database and is not written.
	Create(ctx context.Context, question *entity.Question) error

	FindByID(ctx context.Context, id int64) (*entity.Question, error)
	FindByTitle(ctx context.Context, title string) (*entity.Question, error)

	// List returns all questions ordered by category, difficulty and points.
	List(ctx context.Context) ([]*entity.Question, error)

	Count(ctx context.Context) (int64, error)
}

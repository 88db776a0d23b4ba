package repository

import (
	"context"

	"ctf/internal/domain/entity"
)

// ProgressRepository stores the user/question association tables.
// Pair uniqueness is enforced by the schema, not by this interface's callers.
type ProgressRepository interface {
	// MarkSolved returns ErrQuestionAlreadySolved for a repeated pair.
	MarkSolved(ctx context.Context, userID, questionID int64) (*entity.SolvedQuestion, error)

	// UnlockHint returns ErrHintAlreadyUnlocked for a repeated pair.
	UnlockHint(ctx context.Context, userID, questionID int64) (*entity.UnlockedHint, error)

	// HasSolved reports whether the user already solved the question.
	HasSolved(ctx context.Context, userID, questionID int64) (bool, error)

	// HasUnlockedHint reports whether the user already revealed the question's hint.
	HasUnlockedHint(ctx context.Context, userID, questionID int64) (bool, error)

	// CountSolved returns how many questions the user has solved.
	CountSolved(ctx context.Context, userID int64) (int64, error)
}

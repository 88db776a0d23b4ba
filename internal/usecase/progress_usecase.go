package usecase

import "context"

// SolveResult is the outcome of a correct flag submission.
type SolveResult struct {
	PointsAwarded int
	TotalPoints   int
}

// HintResult is the outcome of a hint unlock.
type HintResult struct {
	Hint            *string
	PointsDeducted  int
	RemainingPoints int

	// AlreadyUnlocked is set when the user had revealed the hint before; nothing is charged.
	AlreadyUnlocked bool
}

// ProgressUsecase defines the scoring operations on top of the seeded data.
type ProgressUsecase interface {
	// SubmitFlag checks flag against the question's stored hash. A match records
	// the solve and awards the question's points in one transaction.
	SubmitFlag(ctx context.Context, userID, questionID int64, flag string) (*SolveResult, error)

	// UnlockHint charges half the question's points and records the unlock in
	// one transaction. It fails with ErrInsufficientPoints when the user
	// cannot pay.
	UnlockHint(ctx context.Context, userID, questionID int64) (*HintResult, error)
}

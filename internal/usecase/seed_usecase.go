package usecase

import (
	"context"

	"ctf/internal/domain/entity"
)

// SeedReport lists what a seed run did, by username and question title.
type SeedReport struct {
	UsersCreated     []string
	UsersSkipped     []string
	QuestionsCreated []string
	QuestionsSkipped []string

	// Skipped rows whose stored content no longer matches the fixture.
	UsersDrifted     []string
	QuestionsDrifted []string
}

// SeedUsecase defines the interface for populating the CTF database.
type SeedUsecase interface {
	// Seed creates missing tables and inserts every fixture row that is not
	// already present. Existing rows are reported and left untouched.
	Seed(ctx context.Context, fixtures *entity.Fixtures) (*SeedReport, error)
}

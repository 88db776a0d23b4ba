package impl

import (
	"context"
	"fmt"
	"log/slog"

	domainerrors "ctf/internal/domain/errors"
	"ctf/internal/domain/repository"
	"ctf/internal/domain/service"
	"ctf/internal/errors"
	"ctf/internal/usecase"
)

type progressService struct {
	txManager repository.TransactionManager
	hasher    service.SecretHasher
	logger    *slog.Logger
}

// NewProgressService creates the scoring use case.
func NewProgressService(
	txManager repository.TransactionManager,
	hasher service.SecretHasher,
	logger *slog.Logger,
) usecase.ProgressUsecase {
	return &progressService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// SubmitFlag checks for a prior solve before comparing the flag, then records
// the solve and awards points inside one transaction.
func (s *progressService) SubmitFlag(ctx context.Context, userID, questionID int64, flag string) (*usecase.SolveResult, error) {
	var result *usecase.SolveResult

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		question, err := f.NewQuestionRepository().FindByID(ctx, questionID)
		if err != nil {
			return err
		}

		progress := f.NewProgressRepository()
		solved, err := progress.HasSolved(ctx, userID, questionID)
		if err != nil {
			return err
		}
		if solved {
			return domainerrors.ErrQuestionAlreadySolved
		}

		if !s.hasher.Check(flag, question.FlagHash) {
			return domainerrors.ErrIncorrectFlag
		}

		if _, err := progress.MarkSolved(ctx, userID, questionID); err != nil {
			return err
		}

		users := f.NewUserRepository()
		if err := users.AddPoints(ctx, userID, question.Points); err != nil {
			return err
		}

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		result = &usecase.SolveResult{
			PointsAwarded: question.Points,
			TotalPoints:   user.Points,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit flag for question %d", questionID)
	}

	s.logger.InfoContext(ctx, "Question solved",
		slog.Int64("userID", userID),
		slog.Int64("questionID", questionID),
		slog.Int("pointsAwarded", result.PointsAwarded),
	)

	return result, nil
}

// UnlockHint returns the hint without charge when it was already revealed.
func (s *progressService) UnlockHint(ctx context.Context, userID, questionID int64) (*usecase.HintResult, error) {
	var result *usecase.HintResult

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		question, err := f.NewQuestionRepository().FindByID(ctx, questionID)
		if err != nil {
			return err
		}

		users := f.NewUserRepository()
		user, err := users.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		progress := f.NewProgressRepository()
		unlocked, err := progress.HasUnlockedHint(ctx, userID, questionID)
		if err != nil {
			return err
		}
		if unlocked {
			result = &usecase.HintResult{
				Hint:            question.Hint,
				RemainingPoints: user.Points,
				AlreadyUnlocked: true,
			}

			return nil
		}

		cost := question.HintCost()
		if user.Points < cost {
			return domainerrors.ErrInsufficientPoints.WrapMessage(
				fmt.Sprintf("need %d points, have %d", cost, user.Points))
		}

		if err := users.AddPoints(ctx, userID, -cost); err != nil {
			return err
		}

		if _, err := progress.UnlockHint(ctx, userID, questionID); err != nil {
			return err
		}

		result = &usecase.HintResult{
			Hint:            question.Hint,
			PointsDeducted:  cost,
			RemainingPoints: user.Points - cost,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unlock hint for question %d", questionID)
	}

	if !result.AlreadyUnlocked {
		s.logger.InfoContext(ctx, "Hint unlocked",
			slog.Int64("userID", userID),
			slog.Int64("questionID", questionID),
			slog.Int("pointsDeducted", result.PointsDeducted),
		)
	}

	return result, nil
}

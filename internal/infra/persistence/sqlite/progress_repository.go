package sqlite

import (
	"context"

	"ctf/internal/domain/entity"
	domainerrors "ctf/internal/domain/errors"
	"ctf/internal/domain/repository"
	"ctf/internal/errors"
	"ctf/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// progressRepository implements repository.ProgressRepository using GORM.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// MarkSolved records a solve. A repeated pair returns ErrQuestionAlreadySolved.
func (repo *progressRepository) MarkSolved(ctx context.Context, userID, questionID int64) (*entity.SolvedQuestion, error) {
	solvedM := &model.SolvedQuestionModel{UserID: userID, QuestionID: questionID}

	if err := repo.db.WithContext(ctx).Create(solvedM).Error; err != nil {
		return nil, translateProgressError(err, domainerrors.ErrQuestionAlreadySolved, "failed to mark question solved")
	}

	return &entity.SolvedQuestion{
		ID:         solvedM.ID,
		UserID:     solvedM.UserID,
		QuestionID: solvedM.QuestionID,
		SolvedAt:   solvedM.SolvedAt,
	}, nil
}

// UnlockHint records a hint reveal. A repeated pair returns ErrHintAlreadyUnlocked.
func (repo *progressRepository) UnlockHint(ctx context.Context, userID, questionID int64) (*entity.UnlockedHint, error) {
	hintM := &model.UnlockedHintModel{UserID: userID, QuestionID: questionID}

	if err := repo.db.WithContext(ctx).Create(hintM).Error; err != nil {
		return nil, translateProgressError(err, domainerrors.ErrHintAlreadyUnlocked, "failed to unlock hint")
	}

	return &entity.UnlockedHint{
		ID:         hintM.ID,
		UserID:     hintM.UserID,
		QuestionID: hintM.QuestionID,
		UnlockedAt: hintM.UnlockedAt,
	}, nil
}

// HasSolved reports whether a solved_questions row exists for the pair.
func (repo *progressRepository) HasSolved(ctx context.Context, userID, questionID int64) (bool, error) {
	return repo.exists(ctx, &model.SolvedQuestionModel{}, userID, questionID)
}

// HasUnlockedHint reports whether an unlocked_hints row exists for the pair.
func (repo *progressRepository) HasUnlockedHint(ctx context.Context, userID, questionID int64) (bool, error) {
	return repo.exists(ctx, &model.UnlockedHintModel{}, userID, questionID)
}

// CountSolved returns how many questions the user has solved.
func (repo *progressRepository) CountSolved(ctx context.Context, userID int64) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).Model(&model.SolvedQuestionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count solved questions")
	}

	return count, nil
}

func (repo *progressRepository) exists(ctx context.Context, table any, userID, questionID int64) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).Model(table).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check progress")
	}

	return count > 0, nil
}

func translateProgressError(err error, duplicate *domainerrors.BaseError, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return duplicate
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrProgressReferenceInvalid
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

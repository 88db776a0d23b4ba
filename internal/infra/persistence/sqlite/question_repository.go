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

// questionRepository implements repository.QuestionRepository using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question. The link column is generated by SQLite,
// so the entity's Link is derived from the new ID rather than read back.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrQuestionAlreadyExists.WrapMessage("title " + question.Title)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.Link = entity.QuestionLink(questionM.ID)
	question.CreatedAt = questionM.CreatedAt

	return nil
}

// FindByID retrieves a single question by ID. It returns ErrQuestionNotFound when absent.
func (repo *questionRepository) FindByID(ctx context.Context, id int64) (*entity.Question, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByTitle retrieves a single question by its unique title.
func (repo *questionRepository) FindByTitle(ctx context.Context, title string) (*entity.Question, error) {
	return repo.findOne(ctx, "title = ?", title)
}

// List mirrors the listing order of the challenge board.
func (repo *questionRepository) List(ctx context.Context) ([]*entity.Question, error) {
	var questionMs []model.QuestionModel

	err := repo.db.WithContext(ctx).Order("category, difficulty, points").Find(&questionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	questions := make([]*entity.Question, 0, len(questionMs))
	for i := range questionMs {
		questions = append(questions, toQuestionDomain(&questionMs[i]))
	}

	return questions, nil
}

// Count returns the number of stored questions.
func (repo *questionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.QuestionModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count questions")
	}

	return count, nil
}

func (repo *questionRepository) findOne(ctx context.Context, query string, arg any) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQuestionNotFound
		}

		return nil, errors.Wrapf(err, "failed to find question where %s", query)
	}

	return toQuestionDomain(&questionM), nil
}

func fromQuestionDomain(question *entity.Question) *model.QuestionModel {
	return &model.QuestionModel{
		ID:          question.ID,
		Title:       question.Title,
		Description: question.Description,
		Category:    question.Category,
		Difficulty:  question.Difficulty,
		Points:      question.Points,
		Flag:        question.FlagHash,
		Hint:        question.Hint,
		CreatedAt:   question.CreatedAt,
	}
}

func toQuestionDomain(questionM *model.QuestionModel) *entity.Question {
	return &entity.Question{
		ID:          questionM.ID,
		Title:       questionM.Title,
		Description: questionM.Description,
		Category:    questionM.Category,
		Difficulty:  questionM.Difficulty,
		Points:      questionM.Points,
		FlagHash:    questionM.Flag,
		Hint:        questionM.Hint,
		Link:        questionM.Link,
		CreatedAt:   questionM.CreatedAt,
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"ctf/internal/domain/entity"
	domainerrors "ctf/internal/domain/errors"
	"ctf/internal/domain/repository"
	"ctf/internal/domain/service"
	"ctf/internal/errors"
	"ctf/internal/usecase"
)

// ErrNoFixtures is returned when Seed is called without fixture data.
var ErrNoFixtures = errors.New("no fixtures to seed")

type seedService struct {
	schemaRepo repository.SchemaRepository
	txManager  repository.TransactionManager
	hasher     service.SecretHasher
	logger     *slog.Logger
}

// NewSeedService creates the seeding use case.
func NewSeedService(
	schemaRepo repository.SchemaRepository,
	txManager repository.TransactionManager,
	hasher service.SecretHasher,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		schemaRepo: schemaRepo,
		txManager:  txManager,
		hasher:     hasher,
		logger:     logger,
	}
}

// Seed applies the schema, then inserts accounts and questions in a single
// transaction. Rows that already exist are skipped; any other failure rolls
// the whole run back.
func (s *seedService) Seed(ctx context.Context, fixtures *entity.Fixtures) (*usecase.SeedReport, error) {
	if fixtures == nil {
		return nil, ErrNoFixtures
	}

	start := time.Now()

	if err := s.schemaRepo.EnsureSchema(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ensure schema")
	}

	report := &usecase.SeedReport{}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		users := f.NewUserRepository()
		for _, account := range fixtures.Accounts {
			if err := s.seedAccount(ctx, users, account, report); err != nil {
				return err
			}
		}

		questions := f.NewQuestionRepository()
		for _, question := range fixtures.Questions {
			if err := s.seedQuestion(ctx, questions, question, report); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	s.logger.InfoContext(ctx, "Database initialized successfully",
		slog.Int("usersCreated", len(report.UsersCreated)),
		slog.Int("usersSkipped", len(report.UsersSkipped)),
		slog.Int("questionsCreated", len(report.QuestionsCreated)),
		slog.Int("questionsSkipped", len(report.QuestionsSkipped)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return report, nil
}

func (s *seedService) seedAccount(ctx context.Context, users repository.UserRepository, account entity.AccountFixture, report *usecase.SeedReport) error {
	hash, err := s.hashSecret(account.Password, "password for user "+account.Username)
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:     account.Username,
		PasswordHash: hash,
		Points:       account.Points,
	}

	err = users.Create(ctx, user)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "Created user", slog.String("username", account.Username))
		report.UsersCreated = append(report.UsersCreated, account.Username)

		return nil
	case errors.Is(err, domainerrors.ErrUserAlreadyExists):
		s.logger.InfoContext(ctx, "User already exists", slog.String("username", account.Username))
		report.UsersSkipped = append(report.UsersSkipped, account.Username)

		return s.checkAccountDrift(ctx, users, account, report)
	default:
		return errors.Wrapf(err, "failed to create user %s", account.Username)
	}
}

// checkAccountDrift flags an existing account whose stored password no longer
// matches the fixture. Points are not compared; play changes them.
func (s *seedService) checkAccountDrift(ctx context.Context, users repository.UserRepository, account entity.AccountFixture, report *usecase.SeedReport) error {
	existing, err := users.FindByUsername(ctx, account.Username)
	if err != nil {
		return errors.Wrapf(err, "failed to load existing user %s", account.Username)
	}

	if s.hasher.Check(account.Password, existing.PasswordHash) {
		return nil
	}

	s.logger.WarnContext(ctx, "User already exists with a different password; left unchanged",
		slog.String("username", account.Username),
	)
	report.UsersDrifted = append(report.UsersDrifted, account.Username)

	return nil
}

func (s *seedService) seedQuestion(ctx context.Context, questions repository.QuestionRepository, fixture entity.QuestionFixture, report *usecase.SeedReport) error {
	hash, err := s.hashSecret(fixture.Flag, "flag for question "+fixture.Title)
	if err != nil {
		return err
	}

	question := &entity.Question{
		Title:       fixture.Title,
		Description: fixture.Description,
		Category:    fixture.Category,
		Difficulty:  fixture.Difficulty,
		Points:      fixture.Points,
		FlagHash:    hash,
		Hint:        optionalText(fixture.Hint),
	}

	err = questions.Create(ctx, question)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "Created question",
			slog.String("title", fixture.Title),
			slog.String("link", question.Link),
		)
		report.QuestionsCreated = append(report.QuestionsCreated, fixture.Title)

		return nil
	case errors.Is(err, domainerrors.ErrQuestionAlreadyExists):
		s.logger.InfoContext(ctx, "Question already exists", slog.String("title", fixture.Title))
		report.QuestionsSkipped = append(report.QuestionsSkipped, fixture.Title)

		return s.checkQuestionDrift(ctx, questions, fixture, report)
	default:
		return errors.Wrapf(err, "failed to create question %s", fixture.Title)
	}
}

func (s *seedService) checkQuestionDrift(ctx context.Context, questions repository.QuestionRepository, fixture entity.QuestionFixture, report *usecase.SeedReport) error {
	existing, err := questions.FindByTitle(ctx, fixture.Title)
	if err != nil {
		return errors.Wrapf(err, "failed to load existing question %s", fixture.Title)
	}

	if questionMatches(existing, fixture) && s.hasher.Check(fixture.Flag, existing.FlagHash) {
		return nil
	}

	s.logger.WarnContext(ctx, "Question already exists with different content; left unchanged",
		slog.String("title", fixture.Title),
		slog.Int64("id", existing.ID),
	)
	report.QuestionsDrifted = append(report.QuestionsDrifted, fixture.Title)

	return nil
}

func (s *seedService) hashSecret(plaintext, what string) (string, error) {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return "", errors.Join(domainerrors.ErrSecretHashFailed, errors.Wrap(err, what))
	}

	return hash, nil
}

func questionMatches(existing *entity.Question, fixture entity.QuestionFixture) bool {
	hint := ""
	if existing.Hint != nil {
		hint = *existing.Hint
	}

	return existing.Description == fixture.Description &&
		existing.Category == fixture.Category &&
		existing.Difficulty == fixture.Difficulty &&
		existing.Points == fixture.Points &&
		hint == fixture.Hint
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

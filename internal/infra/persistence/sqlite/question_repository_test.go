package sqlite

import (
	"context"
	"fmt"
	"testing"

	"ctf/internal/domain/entity"
	domainerrors "ctf/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestion(title, category, difficulty string, points int) *entity.Question {
	hint := "hint for " + title

	return &entity.Question{
		Title:       title,
		Description: "description of " + title,
		Category:    category,
		Difficulty:  difficulty,
		Points:      points,
		FlagHash:    "$2a$04$flaghash",
		Hint:        &hint,
	}
}

func TestQuestionRepository_LinkIsDerivedFromID(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		q := newQuestion(fmt.Sprintf("Question %d", i), "Misc", "Easy", 100)
		require.NoError(t, repo.Create(ctx, q))
		assert.Equal(t, entity.QuestionLink(q.ID), q.Link)
	}

	third, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "/question/3", third.Link)
	assert.Equal(t, "Question 3", third.Title)
}

func TestQuestionRepository_CreateAndFindByTitle(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	q := newQuestion("Basic Encryption", "Cryptography", "Easy", 150)
	require.NoError(t, repo.Create(ctx, q))

	found, err := repo.FindByTitle(ctx, "Basic Encryption")
	require.NoError(t, err)
	assert.Equal(t, q.ID, found.ID)
	assert.Equal(t, "Cryptography", found.Category)
	assert.Equal(t, 150, found.Points)
	assert.Equal(t, "$2a$04$flaghash", found.FlagHash)
	require.NotNil(t, found.Hint)
	assert.Equal(t, "hint for Basic Encryption", *found.Hint)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestQuestionRepository_NilHint(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	q := newQuestion("No Hints Here", "Misc", "Hard", 300)
	q.Hint = nil
	require.NoError(t, repo.Create(ctx, q))

	found, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Hint)
}

func TestQuestionRepository_DuplicateTitle(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newQuestion("Memory Analysis", "Forensics", "Medium", 200)))

	err := repo.Create(ctx, newQuestion("Memory Analysis", "Forensics", "Medium", 200))
	assert.True(t, errors.Is(err, domainerrors.ErrQuestionAlreadyExists))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestQuestionRepository_NotFound(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.True(t, errors.Is(err, domainerrors.ErrQuestionNotFound))

	_, err = repo.FindByTitle(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrQuestionNotFound))
}

func TestQuestionRepository_ListOrder(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newQuestion("Web Medium", "Web Exploitation", "Medium", 200)))
	require.NoError(t, repo.Create(ctx, newQuestion("Crypto Easy 150", "Cryptography", "Easy", 150)))
	require.NoError(t, repo.Create(ctx, newQuestion("Crypto Easy 100", "Cryptography", "Easy", 100)))

	questions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	titles := []string{questions[0].Title, questions[1].Title, questions[2].Title}
	assert.Equal(t, []string{"Crypto Easy 100", "Crypto Easy 150", "Web Medium"}, titles)
	for _, q := range questions {
		assert.Equal(t, entity.QuestionLink(q.ID), q.Link)
	}
}

package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/saulo-duarte/trivia-api/internal/quiz"
	"github.com/saulo-duarte/trivia-api/internal/testutil"
)

type failingRepo struct {
	question.QuestionRepository
}

func (failingRepo) ListExcluding(context.Context, []int, int) ([]*question.Question, error) {
	return nil, errors.New("connection reset")
}

func TestNextQuestion(t *testing.T) {
	ctx := context.Background()
	repo := question.NewRepository(testutil.NewSeededDB(t))

	t.Run("PickerIndexesTheCandidateSet", func(t *testing.T) {
		var seen int
		last := func(n int) int {
			seen = n
			return n - 1
		}

		q, err := quiz.NewService(repo, last).NextQuestion(ctx, []int{16}, 1)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 3, seen)
		assert.Equal(t, 19, q.ID)
	})

	t.Run("AllCategoriesWhenIDIsZero", func(t *testing.T) {
		var seen int
		first := func(n int) int {
			seen = n
			return 0
		}

		q, err := quiz.NewService(repo, first).NextQuestion(ctx, []int{1, 2}, 0)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, len(testutil.Questions)-2, seen)
		assert.Equal(t, 3, q.ID)
	})

	t.Run("NeverReturnsPreviousQuestions", func(t *testing.T) {
		svc := quiz.NewService(repo, quiz.UniformPicker)
		previous := []int{}
		for i := 0; i < 4; i++ {
			q, err := svc.NextQuestion(ctx, previous, 2)
			require.NoError(t, err)
			require.NotNil(t, q)
			assert.Equal(t, 2, q.Category)
			assert.NotContains(t, previous, q.ID)
			previous = append(previous, q.ID)
		}

		q, err := svc.NextQuestion(ctx, previous, 2)
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("NilPickerDefaultsToUniform", func(t *testing.T) {
		q, err := quiz.NewService(repo, nil).NextQuestion(ctx, nil, 6)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 6, q.Category)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		_, err := quiz.NewService(failingRepo{}, nil).NextQuestion(ctx, nil, 0)
		assert.Error(t, err)
	})
}

func TestUniformPickerStaysInRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < 50; i++ {
			idx := quiz.UniformPicker(n)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
		}
	}
}

package question_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/trivia-api/internal/question"
)

func TestIntOrString(t *testing.T) {
	t.Run("AcceptsNumbersAndNumericStrings", func(t *testing.T) {
		for raw, want := range map[string]int{
			`3`:     3,
			`"4"`:   4,
			`" 5 "`: 5,
			`0`:     0,
			`"-1"`:  -1,
		} {
			var n question.IntOrString
			require.NoError(t, json.Unmarshal([]byte(raw), &n), raw)
			assert.Equal(t, want, int(n), raw)
		}
	})

	t.Run("RejectsEverythingElse", func(t *testing.T) {
		for _, raw := range []string{`"abc"`, `1.5`, `true`, `[]`, `{}`, `"99999999999"`} {
			var n question.IntOrString
			assert.Error(t, json.Unmarshal([]byte(raw), &n), raw)
		}
	})

	t.Run("NullLeavesPointerNil", func(t *testing.T) {
		var dto question.CreateQuestionDTO
		require.NoError(t, json.Unmarshal([]byte(`{"category": null}`), &dto))
		assert.Nil(t, dto.Category)
		assert.Equal(t, 0, dto.Category.Int())
	})
}

package question

import (
	"fmt"
	"strconv"
	"strings"
)

// IntOrString decodes a JSON number or a numeric JSON string into an int.
type IntOrString int

func (n *IntOrString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", b)
	}
	*n = IntOrString(v)
	return nil
}

func (n *IntOrString) Int() int {
	if n == nil {
		return 0
	}
	return int(*n)
}

type CreateQuestionDTO struct {
	Question   string       `json:"question" validate:"required"`
	Answer     string       `json:"answer" validate:"required"`
	Difficulty *IntOrString `json:"difficulty" validate:"required"`
	Category   *IntOrString `json:"category" validate:"required"`
}

type SearchQuestionsDTO struct {
	Query *string `json:"query" validate:"required"`
}

type QuestionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionPage struct {
	Questions      []QuestionResponse
	TotalQuestions int64
	Categories     map[int]string
}

type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      map[int]string     `json:"categories"`
	CurrentCategory *string            `json:"current_category"`
}

type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type DeleteQuestionResponse struct {
	Success bool   `json:"success"`
	Deleted string `json:"deleted"`
}

func ToResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func ToResponses(questions []*Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, ToResponse(q))
	}
	return responses
}

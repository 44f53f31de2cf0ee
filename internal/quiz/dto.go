package quiz

import "github.com/saulo-duarte/trivia-api/internal/question"

type QuizCategoryDTO struct {
	ID   *question.IntOrString `json:"id" validate:"required"`
	Type string                `json:"type"`
}

type PlayQuizDTO struct {
	PreviousQuestions []int            `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategoryDTO `json:"quiz_category" validate:"required"`
}

type PlayQuizResponse struct {
	Success  bool                       `json:"success"`
	Question *question.QuestionResponse `json:"question"`
}

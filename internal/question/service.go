package question

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrPageNotFound     = errors.New("page not found")
	ErrInvalidID        = errors.New("invalid id format")
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page, limit int) (*QuestionPage, error)
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, id string) error
	SearchQuestions(ctx context.Context, term string) ([]QuestionResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID string) ([]QuestionResponse, error)
}

type questionService struct {
	repo         QuestionRepository
	categoryRepo category.CategoryRepository
}

func NewService(repo QuestionRepository, categoryRepo category.CategoryRepository) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// parseID accepts only values that fit the 32-bit integer id columns.
func parseID(log logrus.FieldLogger, id string, entityName string) (int, error) {
	parsed, err := strconv.ParseInt(id, 10, 32)
	if err != nil {
		log.WithError(err).Warnf("Invalid %s ID", entityName)
		return 0, ErrInvalidID
	}
	return int(parsed), nil
}

func (s *questionService) ListQuestions(ctx context.Context, page, limit int) (*QuestionPage, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"page":  page,
		"limit": limit,
	})

	if page < 1 || limit < 1 || page-1 > math.MaxInt/limit {
		log.Warn("Requested page is out of range")
		return nil, ErrPageNotFound
	}

	questions, err := s.repo.ListPage(ctx, limit, (page-1)*limit)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}
	if len(questions) == 0 {
		log.Warn("Requested page has no questions")
		return nil, ErrPageNotFound
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count questions")
		return nil, err
	}

	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}

	return &QuestionPage{
		Questions:      ToResponses(questions),
		TotalQuestions: total,
		Categories:     category.ToMap(categories),
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q := &Question{
		Question:   dto.Question,
		Answer:     dto.Answer,
		Difficulty: dto.Difficulty.Int(),
		Category:   dto.Category.Int(),
	}

	if err := s.repo.Create(ctx, q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created successfully")
	return q, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	questionID, err := parseID(log, id, "question")
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("question_id", questionID).Warn("Question not found for deletion")
			return ErrQuestionNotFound
		}
		log.WithError(err).Error("Error finding question before deletion")
		return err
	}

	if err := s.repo.Delete(ctx, questionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrQuestionNotFound
		}
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.WithField("question_id", questionID).Info("Question deleted successfully")
	return nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) ([]QuestionResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.Search(ctx, term)
	if err != nil {
		log.WithError(err).WithField("query", term).Error("Failed to search questions")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"query":   term,
		"matches": len(questions),
	}).Debug("Question search finished")
	return ToResponses(questions), nil
}

func (s *questionService) ListQuestionsByCategory(ctx context.Context, categoryID string) ([]QuestionResponse, error) {
	log := config.WithContext(ctx)

	cid, err := parseID(log, categoryID, "category")
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListByCategory(ctx, cid)
	if err != nil {
		log.WithError(err).WithField("category_id", cid).Error("Failed to list questions by category")
		return nil, err
	}
	return ToResponses(questions), nil
}

package category

import (
	"context"
	"errors"

	"github.com/saulo-duarte/trivia-api/internal/config"
)

var ErrNoCategories = errors.New("no categories found")

type CategoryService interface {
	ListCategories(ctx context.Context) (map[int]string, error)
}

type categoryService struct {
	repo CategoryRepository
}

func NewService(repo CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) (map[int]string, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}

	if len(categories) == 0 {
		log.Warn("No categories registered")
		return nil, ErrNoCategories
	}

	return ToMap(categories), nil
}

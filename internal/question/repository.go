package question

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("question not found")

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	FindByID(ctx context.Context, id int) (*Question, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, limit, offset int) ([]*Question, error)
	Search(ctx context.Context, term string) ([]*Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)
	ListExcluding(ctx context.Context, excludeIDs []int, categoryID int) ([]*Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id int) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *questionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *questionRepository) ListPage(ctx context.Context, limit, offset int) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *questionRepository) Search(ctx context.Context, term string) ([]*Question, error) {
	pattern := "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"

	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListExcluding returns questions whose id is not in excludeIDs. A categoryID of 0 matches every category.
func (r *questionRepository) ListExcluding(ctx context.Context, excludeIDs []int, categoryID int) ([]*Question, error) {
	query := r.db.WithContext(ctx).Model(&Question{})

	// NOT IN over an empty list renders as NOT IN (NULL), which matches nothing.
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	var questions []*Question
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

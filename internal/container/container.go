package container

import (
	"context"
	"log"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/auth"
	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/saulo-duarte/trivia-api/internal/quiz"
	"github.com/saulo-duarte/trivia-api/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	DB                *gorm.DB
	CategoryContainer *category.CategoryContainer
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
}

func New(settings *config.Settings) *Container {
	config.Init(settings.LogLevel, settings.LogFormat)
	auth.Init(settings.JWTSecret)

	if err := config.Connect(context.Background(), settings.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if settings.AutoMigrate {
		if err := Migrate(config.DB); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
	}

	return Build(config.DB, settings.QuestionsPerPage)
}

// Build wires every feature container on top of an already opened database.
func Build(db *gorm.DB, questionsPerPage int) *Container {
	categoryContainer := category.NewCategoryContainer(db)
	questionContainer := question.NewQuestionContainer(db, categoryContainer.Repo, questionsPerPage)
	quizContainer := quiz.NewQuizContainer(questionContainer.Repo)

	return &Container{
		DB:                db,
		CategoryContainer: categoryContainer,
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&category.Category{}, &question.Question{})
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		CategoryHandler: c.CategoryContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		HealthCheck: func(ctx context.Context) error {
			return config.Ping(ctx, c.DB)
		},
	})
}

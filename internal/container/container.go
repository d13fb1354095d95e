package container

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/saulo-duarte/hikma-lambda/internal/aiquiz"
	"github.com/saulo-duarte/hikma-lambda/internal/auth"
	"github.com/saulo-duarte/hikma-lambda/internal/config"
	"github.com/saulo-duarte/hikma-lambda/internal/content"
	"github.com/saulo-duarte/hikma-lambda/internal/gemini"
	"github.com/saulo-duarte/hikma-lambda/internal/quiz"
)

type Container struct {
	Settings         config.Settings
	ShutdownTracing  func(context.Context) error
	ContentContainer *content.ContentContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	QuizContainer    *quiz.QuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	if !config.InitCrypto() {
		config.Logger.Warn("CRYPTO_KEY not set; learner names are stored in plain text")
	}

	ctx := context.Background()
	settings := config.Load()

	shutdownTracing, err := config.InitTracing(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	var db *gorm.DB
	if settings.DatabaseDSN != "" {
		if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		if err := config.DB.AutoMigrate(&quiz.Certificate{}); err != nil {
			log.Fatalf("failed to migrate certificates: %v", err)
		}
		db = config.DB
	} else {
		config.Logger.Warn("DATABASE_DSN not set; certificates are kept in memory")
	}

	provider, err := gemini.NewGeminiProvider(ctx, gemini.Options{
		APIKey: settings.GeminiAPIKey,
		Model:  settings.GeminiModel,
	})
	if err != nil {
		log.Fatalf("failed to create Gemini provider: %v", err)
	}

	contentContainer := content.NewContentContainer(provider)
	aiQuizContainer := aiquiz.NewAIQuizContainer(provider)
	quizContainer := quiz.NewQuizContainer(db, aiQuizContainer.Service, settings.CookieDomain, settings.SessionTTL, settings.SessionLimit)

	return &Container{
		Settings:         settings,
		ShutdownTracing:  shutdownTracing,
		ContentContainer: contentContainer,
		AIQuizContainer:  aiQuizContainer,
		QuizContainer:    quizContainer,
	}
}

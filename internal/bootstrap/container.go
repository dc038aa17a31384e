package bootstrap

import (
	"context"
	"log"

	"ramayana-qa-be/internal/config"
	"ramayana-qa-be/internal/controller"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/internal/repository/implementation"
	"ramayana-qa-be/internal/repository/memory"
	"ramayana-qa-be/internal/service"
	"ramayana-qa-be/pkg/embedding"
	"ramayana-qa-be/pkg/llm/factory"
	"ramayana-qa-be/pkg/rag"
	"ramayana-qa-be/pkg/sarvam"

	pktNats "ramayana-qa-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	SpeechController   controller.ISpeechController
	LanguageController controller.ILanguageController
	CorpusController   controller.ICorpusController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	passageRepo := implementation.NewPassageRepository(db)
	sessionRepo := implementation.NewChatSessionRepository(db)
	turnRepo := implementation.NewChatTurnRepository(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Sarvam.APIKey,
		cfg.Sarvam.BaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	sarvamOpts := []sarvam.Option{}
	if cfg.Sarvam.BaseURL != "" {
		sarvamOpts = append(sarvamOpts, sarvam.WithBaseURL(cfg.Sarvam.BaseURL))
	}
	sarvamClient := sarvam.NewClient(cfg.Sarvam.APIKey, sarvamOpts...)

	// 3.5 Infrastructure
	// NATS (optional; the ask flow degrades to no analytics without it)
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}

	// Redis (optional; synthesis cache is bypassed without it)
	var audioCache redis.UniversalClient
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	} else {
		audioCache = rdb
	}

	// 4. Pipeline
	translator := service.NewCachedTranslator(sarvamClient, memory.NewTranslationCache())
	retriever := rag.NewStore(embeddingProvider, passageRepo)
	pipeline := rag.NewPipeline(translator, retriever, llmProvider, sysLogger)

	// 5. Services
	askService := service.NewAskService(pipeline, sessionRepo, turnRepo, eventPublisher, sysLogger)
	sessionService := service.NewSessionService(sessionRepo, turnRepo)
	speechService := service.NewSpeechService(sarvamClient, sarvamClient, audioCache, sysLogger)
	corpusService := service.NewCorpusService(passageRepo, pubSub, cfg.Corpus.EmbedTopic, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Corpus.EmbedTopic,
		passageRepo,
		embeddingProvider,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ChatController:     controller.NewChatController(askService, sessionService),
		SpeechController:   controller.NewSpeechController(speechService),
		LanguageController: controller.NewLanguageController(),
		CorpusController:   controller.NewCorpusController(corpusService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gift-recommender-be/internal/config"
	"gift-recommender-be/internal/controller"
	"gift-recommender-be/internal/handler"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/memory"
	"gift-recommender-be/internal/repository/redisstore"
	"gift-recommender-be/internal/repository/unitofwork"
	"gift-recommender-be/internal/service"
	"gift-recommender-be/internal/websocket"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/embedding"
	"gift-recommender-be/pkg/events"
	"gift-recommender-be/pkg/message"
	pktNats "gift-recommender-be/pkg/nats"
	"gift-recommender-be/pkg/ranking"
	"gift-recommender-be/pkg/recommend"
	"gift-recommender-be/pkg/scoring"
	"gift-recommender-be/pkg/session"
	"gift-recommender-be/pkg/understanding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EventsTopic is the in-process topic every domain event goes through.
const EventsTopic = "gift.events"

type Container struct {
	// Controllers
	SystemController  controller.ISystemController
	SuggestController controller.ISuggestController
	SessionController controller.ISessionController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ConversationHandler *handler.ConversationHandler
	WebSocketHub        *websocket.Hub

	Logger   logger.ILogger
	Pipeline *recommend.Pipeline
	Sessions *session.Manager

	breaker *embedding.BreakerProvider
	closers []func() error
}

// NewContainer wires every component. db may be nil when the catalog is read
// from a file; the persisted embedding cache is then disabled.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	c := &Container{Logger: sysLogger}

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}

	loc := cfg.Recommend.Location()
	now := func() time.Time { return time.Now().In(loc) }

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, pubSub.Close)

	// 3. Embedding stack: handle -> breaker -> cache
	factory, modelKey, err := embeddingFactory(cfg.Ai)
	if err != nil {
		return nil, err
	}
	handle := embedding.NewHandle(factory)
	c.closers = append(c.closers, handle.Close)

	c.breaker = embedding.NewBreakerProvider(handle, embedding.BreakerSettings{
		Name:        modelKey,
		MaxFailures: uint32(cfg.Ai.BreakerFailures),
		OpenTimeout: cfg.Ai.BreakerCooldown,
	}, sysLogger)

	var vectorStore embedding.VectorStore
	if uowFactory != nil && cfg.Ai.PersistEmbeddings {
		vectorStore = service.NewProductEmbeddingStore(uowFactory)
	}
	cached := embedding.NewCachedProvider(c.breaker, modelKey, cfg.Ai.CacheTTL, vectorStore, sysLogger)
	log.Printf("[INFO] Using Embedding Provider: %s", modelKey)

	// 4. Context extraction
	extractor := understanding.Default()
	if cfg.Recommend.TaxonomyPath != "" {
		extractor, err = understanding.NewExtractorFromFile(cfg.Recommend.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		log.Printf("[INFO] Using taxonomy file: %s", cfg.Recommend.TaxonomyPath)
	}

	// 5. Sessions
	var rdb *redis.Client
	var storage session.Storage
	switch cfg.Session.Backend {
	case "redis":
		rdb = newRedisClient(cfg.App.RedisURL)
		repo := redisstore.NewSessionRepository(rdb, cfg.Session.RedisPrefix, cfg.Session.MaxAge)
		c.closers = append(c.closers, repo.Close)
		storage = repo
	case "", "memory":
		storage = memory.NewSessionRepository()
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}

	c.Sessions = session.NewManager(storage, sysLogger,
		session.WithMaxAge(cfg.Session.MaxAge),
		session.WithCleanupInterval(cfg.Session.CleanupInterval),
		session.WithHistoryLimit(cfg.Session.HistoryLimit),
	)

	// 6. Catalog
	var source catalog.Source
	switch cfg.Catalog.Source {
	case "file":
		source = catalog.NewFileSource(cfg.Catalog.FilePath)
	case "", "db":
		if uowFactory == nil {
			return nil, errors.New("catalog source db requires DB_CONNECTION_STRING")
		}
		source = catalog.NewRepositorySource(uowFactory)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	// 7. Events: pipeline -> gochannel -> consumer -> NATS
	var forward events.Publisher
	if cfg.App.NatsEnabled {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forward = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	publisherService := service.NewPublisherService(EventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, EventsTopic, forward, sysLogger)

	// 8. Pipeline
	c.Pipeline = recommend.NewPipeline(recommend.Deps{
		Extractor: extractor,
		Sessions:  c.Sessions,
		Catalog:   source,
		Scorer: scoring.NewScorer(cached, sysLogger,
			scoring.WithThreshold(cfg.Recommend.SimilarityThreshold),
		),
		Reranker:    ranking.NewReranker(now),
		Formatter:   message.NewFormatter(nil, now),
		Publisher:   publisherService,
		Logger:      sysLogger,
		Now:         now,
		DefaultTopK: cfg.Recommend.DefaultTopK,
	})

	// 9. Services
	suggestService := service.NewSuggestService(c.Pipeline)
	sessionService := service.NewSessionService(c.Sessions, publisherService, sysLogger)
	embeddingService := service.NewEmbeddingService(uowFactory, cached, cached, modelKey, sysLogger)

	// WebSocket Hub
	c.WebSocketHub = websocket.NewHub(rdb, uuid.NewString(), sysLogger)
	c.ConversationHandler = handler.NewConversationHandler(suggestService, sessionService, c.WebSocketHub, sysLogger)

	// 10. Controllers
	c.SystemController = controller.NewSystemController(c)
	c.SuggestController = controller.NewSuggestController(suggestService)
	c.SessionController = controller.NewSessionController(sessionService)
	c.AdminController = controller.NewAdminController(sessionService, embeddingService, cfg.App.JwtSecret)

	c.closers = append(c.closers, sysLogger.Sync)
	return c, nil
}

// Start runs the background workers until ctx ends.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Container) OpenConversations() int {
	return c.WebSocketHub.Count()
}

func (c *Container) EmbeddingState() string {
	return c.breaker.State()
}

func newRedisClient(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return rdb
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"quadratum/internal/adapters"
	"quadratum/internal/bootstrap"
	gameDelivery "quadratum/internal/delivery/game"
	ownMiddleware "quadratum/internal/middleware"
	repo "quadratum/internal/repository"
	gameuc "quadratum/internal/usecase/game"
)

type mainDeliveryHandler struct {
	game *gameDelivery.GameHandler
	hub  *gameDelivery.Hub
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		NewLogger(false).Errorw("Failed to setup configuration", "error", err)
		os.Exit(1)
	}
	logger := NewLogger(cfg.LogDevelopment)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	session, err := gameuc.NewSession(*cfg, logger, gameuc.NewLogListener(logger))
	if err != nil {
		logger.Fatal("Failed to create game session", zap.Error(err))
	}

	handlers, closeSinks := initializeDeliveryHandlers(ctx, *cfg, logger, session)
	defer closeSinks()

	r := chi.NewRouter()
	handlers.Router(r, *cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		handlers.hub.Close()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Failed to shut down server", "error", err)
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func NewLogger(development bool) *zap.SugaredLogger {
	build := zap.NewProduction
	if development {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, cfg bootstrap.Config) {
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS(cfg.AllowedOrigins()))
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h.game.Routes(r)
}

// initializeDeliveryHandlers wires the event feed: every game event goes to the
// websocket hub and, when REDIS_URL is set, to the Redis channel.
func initializeDeliveryHandlers(
	ctx context.Context,
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	session *gameuc.Session,
) (*mainDeliveryHandler, func()) {
	hub := gameDelivery.NewHub(log, session)
	bridge := gameuc.NewEventBridge(session.Logic(), log, hub)

	closeSinks := func() {}
	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(&cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		bridge.AddSink(repo.NewGameRepository(cfg, log, redisAdapter.GetClient()))
		closeSinks = func() { _ = redisAdapter.Close(ctx) }
		log.Infof("Publishing game events to redis channel %s", cfg.RedisChannel)
	}
	session.AddListener(bridge)

	return &mainDeliveryHandler{
		game: gameDelivery.NewGameHandler(cfg, log, session, hub),
		hub:  hub,
	}, closeSinks
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddify/api"
	"weddify/config"
	"weddify/handlers"
	"weddify/models"
	"weddify/routes"
	"weddify/services/booking"
	"weddify/services/chat"
	"weddify/services/client"
	"weddify/services/notification"
	"weddify/session"
	"weddify/utils"

	"go.uber.org/zap"
)

// logNavigator records forced navigations; UI embedders replace it.
type logNavigator struct {
	logger *zap.Logger
}

func (n *logNavigator) NavigateTo(path string) {
	n.logger.Info("navigation forced", zap.String("path", path))
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Session storage: Redis when configured, a local file otherwise.
	var durable session.Scope
	if cfg.RedisAddr != "" {
		scope, err := session.NewRedisScope(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSession, 30*24*time.Hour)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize redis session scope: %v", err)
		}
		durable = scope
	} else {
		scope, err := session.NewFileScope(cfg.SessionFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize session file: %v", err)
		}
		durable = scope
	}
	sessions := session.NewStore(durable, session.NewMemoryScope())

	notifier := notification.NewLogNotifier(logger)
	navigator := &logNavigator{logger: logger}
	restClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout(), sessions, notifier, navigator, logger)

	clientService, err := client.NewClientService(restClient, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build client service: %v", err)
	}

	channel := chat.NewWebsocketChannel(cfg.SocketURL(), sessions, models.RoleClient, logger)
	conversationStore := chat.NewStore(clientService, channel, sessions, notifier, logger)
	defer conversationStore.Close()

	poller := booking.NewStatusPoller(clientService, notifier, logger, cfg.PollInterval())
	paymentStatusHandler := handlers.NewPaymentStatusHandler(poller, logger)

	router := routes.SetupRouter(paymentStatusHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Connect the realtime channel once a session exists.
	if _, ok := sessions.Get(); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := conversationStore.Connect(ctx); err != nil {
			logger.Warn("main: realtime channel unavailable", zap.Error(err))
		}
		cancel()
	}

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

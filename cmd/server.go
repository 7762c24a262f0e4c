package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"walletfeed/internal/cancel"
	"walletfeed/internal/config"
	"walletfeed/internal/core"
	"walletfeed/internal/db"
	"walletfeed/internal/ethereum"
	"walletfeed/internal/http/handler"
	"walletfeed/internal/http/handler/middleware"
	"walletfeed/internal/http/payload"
	"walletfeed/internal/http/server"
	"walletfeed/internal/remote"
	"walletfeed/internal/repository"
	"walletfeed/pkg/jwt"
	"walletfeed/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("walletfeed", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewWalletRepository(dbConn)

	if err := repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	provider, err := ethereum.NewProvider(logger, client, config.SignerKey)
	if err != nil {
		logger.Errorw("failed to create signing provider", "error", err)
		return err
	}

	// remote sources
	httpClient := &http.Client{}
	indexer := remote.NewIndexerClient(logger, config.IndexerURL, httpClient)
	orderClient := remote.NewOrderClient(logger, config.OrderAPIURL, httpClient)

	cachedOrders, err := cancel.NewCachedOrderFetcher(logger, orderClient)
	if err != nil {
		logger.Errorw("failed to create order cache", "error", err)
		return err
	}

	factory, err := ethereum.NewPermit2Factory(logger)
	if err != nil {
		logger.Errorw("failed to create cancellation factory", "error", err)
		return err
	}

	canceller := cancel.NewCanceller(logger, cachedOrders, factory, provider, provider)

	// feed
	feed := core.NewFeed(
		logger,
		repo,
		indexer,
		canceller,
		jwtService,
		config.EnabledChains)

	// handler
	feedHlr := handler.NewFeedHandler(
		logger,
		payload.Decoder{},
		jwtService,
		feed)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, feedHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetActivity, feedHlr.HandleGetActivity)
	mux.HandleFunc(handler.SubmitTransaction, feedHlr.HandleSubmitTransaction)
	mux.HandleFunc(handler.CancelOrders, feedHlr.HandleCancelOrders)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

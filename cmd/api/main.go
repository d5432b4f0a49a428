package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketstall/internal/config"
	"marketstall/internal/db"
	"marketstall/internal/httpserver"
	orderrepo "marketstall/internal/repository/order"
	productrepo "marketstall/internal/repository/product"
	userrepo "marketstall/internal/repository/user"
	ordersvc "marketstall/internal/service/order"
	productsvc "marketstall/internal/service/product"
	usersvc "marketstall/internal/service/user"
	"marketstall/internal/storage"
	svix "github.com/svix/svix-webhooks/go"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.WebhookSecret == "" {
		logger.Fatalf("CLERK_WEBHOOK_SECRET is required")
	}
	verifier, err := svix.NewWebhook(cfg.WebhookSecret)
	if err != nil {
		logger.Fatalf("init webhook verifier: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	files, err := storage.NewMinio(ctx, storage.MinioConfig{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
		UploadTTL: cfg.UploadTTL,
	})
	if err != nil {
		logger.Fatalf("connect to object store: %v", err)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, files, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	userService := usersvc.New(userRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc: productService,
		OrderSvc:   orderService,
		UserSvc:    userService,
		Files:      files,
		Verifier:   verifier,
		AuthSecret: cfg.AuthSecret,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

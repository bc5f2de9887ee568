package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"sungraze_backend/internal/bootstrap"
	"sungraze_backend/internal/worker"
	"sungraze_backend/pkg/config"
	"sungraze_backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	sink, err := bootstrap.EmailSink(cfg, log)
	if err != nil {
		log.Fatal("could not initialize email sink", zap.Error(err))
	}

	server := asynq.NewServer(bootstrap.RedisOpt(cfg.Redis), asynq.Config{
		Concurrency: 4,
		Logger:      log.Sugar(),
	})
	processor := worker.NewProcessor(sink, log)
	mux := processor.Handler()

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	log.Info("worker started", zap.String("redis", cfg.Redis.Addr))
	if err := server.Run(mux); err != nil {
		log.Error("worker stopped", zap.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodmarket/api"
	"foodmarket/config"
	"foodmarket/pkg/cart"
	"foodmarket/pkg/logger"
	"foodmarket/pkg/notify"
	"foodmarket/service"
	"foodmarket/storage/postgres"
)

const cartTTL = 7 * 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName)

	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	cartStore, err := cart.NewRedisStore(cfg, cartTTL)
	if err != nil {
		log.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	carts := cart.NewManager(cartStore, log)

	notifier, err := notify.NewTelegram(cfg.CourierBotToken, cfg.CourierChatID, log)
	if err != nil {
		log.Error("failed to initialize courier notifier", logger.Error(err))
		os.Exit(1)
	}

	svc := service.New(cfg, pgStore, notifier, log)
	server := api.NewServer(cfg, svc, carts, log)

	go func() {
		if err := server.Run(); err != nil {
			log.Error("HTTP server stopped", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutting down")
}

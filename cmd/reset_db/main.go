package main

import (
	"context"
	"fmt"

	"foodmarket/config"
	"foodmarket/pkg/logger"
	"foodmarket/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName)
	pg, err := postgres.New(context.Background(), cfg, log)

	if err != nil {
		panic(err)
	}
	defer pg.Close()

	// Wipe transactional data only; profiles, restaurants, and menus are
	// system data and stay.
	_, err = pg.GetPool().Exec(context.Background(), "TRUNCATE TABLE orders, order_items, order_tracking CASCADE")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to truncate tables: %v", err))
	} else {
		log.Info("Successfully truncated orders, order_items, and order_tracking tables.")
	}
}

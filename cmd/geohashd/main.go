package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"geohash-service/api"
	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/database"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	flag.Parse()

	// Initialize configuration
	config.InitConfig(*configPath)
	cfg := config.Cfg

	// Initialize database
	db, err := database.InitDB(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	server := &api.Server{
		Places:           database.NewPlaceStore(db),
		DefaultPrecision: cfg.Geohash.DefaultPrecision,
	}

	// Redis is optional; without it neighbours are computed per request
	rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		log.Printf("Neighbor cache disabled: %v", err)
	} else {
		defer rdb.Close()
		server.Neighbors = cache.NewNeighborCache(rdb, cfg.Redis.TTL)
	}

	// Register routes
	router := api.RegisterRoutes(server)

	// Start the server
	log.Printf("Server started on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, router))
}

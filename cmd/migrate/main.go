package main

import (
	"flag"
	"log"

	"geohash-service/config"
	"geohash-service/migration"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	path := flag.String("path", migration.DefaultPath, "migration source URL")
	flag.Parse()

	config.InitConfig(*configPath)

	// Run the migrations
	if err := migration.RunMigrations(config.Cfg.DB, *path); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
}

package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"geohash-service/config"
)

// DefaultPath is where the SQL migrations live relative to the repo root.
const DefaultPath = "file://database/migrations"

const (
	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// waitForDB pings the database until it answers or attempts run out.
func waitForDB(dsn string, attempts int, delay time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			db.Close()
		}
		if err == nil {
			log.Println("Connected to the database successfully.")
			return nil
		}
		log.Printf("Waiting for the database to be ready... (attempt %d)", i+1)
		time.Sleep(delay)
	}
	return fmt.Errorf("could not connect to the database: %v", err)
}

// RunMigrations applies every pending up migration found at path.
func RunMigrations(cfg config.DBConfig, path string) error {
	if path == "" {
		path = DefaultPath
	}
	dsn := cfg.URL()

	if err := waitForDB(dsn, connectAttempts, connectDelay); err != nil {
		return err
	}

	m, err := migrate.New(path, dsn)
	if err != nil {
		return fmt.Errorf("could not start migrations: %v", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %v", err)
	}

	log.Println("Migrations applied successfully!")
	return nil
}

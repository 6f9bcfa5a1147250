package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"geohash-service/config"
	"geohash-service/geohash"
	"geohash-service/models"
)

// ErrDuplicatePlace is returned by Create when the name is taken.
var ErrDuplicatePlace = errors.New("place already exists")

func InitDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	log.Println("Database connected.")
	return db, nil
}

// PlaceStore persists places in the places table.
type PlaceStore struct {
	db *sql.DB
}

func NewPlaceStore(db *sql.DB) *PlaceStore {
	return &PlaceStore{db: db}
}

// Create encodes the place's point at its precision and inserts it,
// filling in ID, Geohash and CreatedAt.
func (s *PlaceStore) Create(ctx context.Context, p *models.Place) error {
	hash, err := geohash.Encode(p.Latitude, p.Longitude, p.Precision)
	if err != nil {
		return err
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO places (name, latitude, longitude, precision, geohash)
         VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		p.Name, p.Latitude, p.Longitude, p.Precision, hash,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePlace
		}
		return err
	}
	p.Geohash = hash
	return nil
}

// Get returns the place with the given id, or sql.ErrNoRows.
func (s *PlaceStore) Get(ctx context.Context, id int64) (*models.Place, error) {
	var p models.Place
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, latitude, longitude, precision, geohash, created_at FROM places WHERE id=$1`,
		id,
	).Scan(
		&p.ID,
		&p.Name,
		&p.Latitude,
		&p.Longitude,
		&p.Precision,
		&p.Geohash,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

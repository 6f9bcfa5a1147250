package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-service/geohash"
	"geohash-service/models"
)

var (
	insertPlace = regexp.QuoteMeta(`INSERT INTO places`)
	selectPlace = regexp.QuoteMeta(`SELECT id, name, latitude, longitude, precision, geohash, created_at FROM places WHERE id=$1`)
)

func newMockStore(t *testing.T) (*PlaceStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPlaceStore(db), mock
}

func TestPlaceStoreCreate(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	lat := decimal.RequireFromString("51.5")
	lon := decimal.RequireFromString("-0.12")
	mock.ExpectQuery(insertPlace).
		WithArgs("Big Ben", lat, lon, 9, "gcpuvr295").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	p := &models.Place{Name: "Big Ben", Latitude: lat, Longitude: lon, Precision: 9}
	require.NoError(t, store.Create(context.Background(), p))

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "gcpuvr295", p.Geohash)
	assert.Equal(t, created, p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceStoreCreateInvalidPoint(t *testing.T) {
	store, mock := newMockStore(t)

	p := &models.Place{Name: "nowhere", Latitude: decimal.NewFromInt(95), Longitude: decimal.Zero, Precision: 5}
	err := store.Create(context.Background(), p)
	assert.ErrorIs(t, err, geohash.ErrInvalidInput)

	p = &models.Place{Name: "nowhere", Latitude: decimal.Zero, Longitude: decimal.Zero, Precision: 0}
	err = store.Create(context.Background(), p)
	assert.ErrorIs(t, err, geohash.ErrInvalidInput)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceStoreCreateDuplicate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(insertPlace).WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	p := &models.Place{Name: "Big Ben", Latitude: decimal.Zero, Longitude: decimal.Zero, Precision: 5}
	err := store.Create(context.Background(), p)
	assert.ErrorIs(t, err, ErrDuplicatePlace)
	assert.Zero(t, p.ID)
}

func TestPlaceStoreGet(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectPlace).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude", "precision", "geohash", "created_at"}).
			AddRow(int64(7), "Big Ben", "51.5", "-0.12", int64(9), "gcpuvr295", created))

	p, err := store.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Big Ben", p.Name)
	assert.True(t, decimal.RequireFromString("51.5").Equal(p.Latitude))
	assert.True(t, decimal.RequireFromString("-0.12").Equal(p.Longitude))
	assert.Equal(t, 9, p.Precision)
	assert.Equal(t, "gcpuvr295", p.Geohash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceStoreGetMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(selectPlace).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), 8)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"geohash-service/database"
	"geohash-service/geohash"
	"geohash-service/models"
)

// NeighborSource returns the eight neighbours of a geohash.
type NeighborSource interface {
	Get(ctx context.Context, hash string) (geohash.Neighbors, error)
}

// PlaceRepository stores and loads places.
type PlaceRepository interface {
	Create(ctx context.Context, p *models.Place) error
	Get(ctx context.Context, id int64) (*models.Place, error)
}

// Server holds the collaborators used by the HTTP handlers. Neighbors and
// Places may be nil: neighbours are then computed directly and the place
// endpoints answer 503.
type Server struct {
	Neighbors        NeighborSource
	Places           PlaceRepository
	DefaultPrecision int
}

type hashResponse struct {
	Geohash string `json:"geohash"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeError maps invalid input to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, geohash.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("request failed: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// BoundsHandler returns the south-west and north-east corners of a cell
func (s *Server) BoundsHandler(w http.ResponseWriter, r *http.Request) {
	box, err := geohash.Bounds(mux.Vars(r)["hash"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, box)
}

// DecodeHandler returns the rounded centre of a cell
func (s *Server) DecodeHandler(w http.ResponseWriter, r *http.Request) {
	p, err := geohash.Decode(mux.Vars(r)["hash"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// AdjacentHandler returns the neighbouring cell in one direction
func (s *Server) AdjacentHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dir, err := geohash.ParseDirection(vars["direction"])
	if err != nil {
		writeError(w, err)
		return
	}
	hash, err := geohash.Adjacent(vars["hash"], dir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hashResponse{Geohash: hash})
}

// NeighborsHandler returns all eight neighbouring cells
func (s *Server) NeighborsHandler(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	var (
		nb  geohash.Neighbors
		err error
	)
	if s.Neighbors != nil {
		nb, err = s.Neighbors.Get(r.Context(), hash)
	} else {
		nb, err = geohash.AllNeighbors(hash)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nb)
}

// EncodeHandler encodes the lat and lon query parameters
func (s *Server) EncodeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	precision := s.DefaultPrecision
	if p := q.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "Invalid precision", http.StatusBadRequest)
			return
		}
		precision = n
	}

	hash, err := geohash.EncodeString(q.Get("lat"), q.Get("lon"), precision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hashResponse{Geohash: hash})
}

// CreatePlace stores a named point along with its geohash
func (s *Server) CreatePlace(w http.ResponseWriter, r *http.Request) {
	if s.Places == nil {
		http.Error(w, "Place storage unavailable", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Name      string           `json:"name"`
		Latitude  *decimal.Decimal `json:"latitude"`
		Longitude *decimal.Decimal `json:"longitude"`
		Precision int              `json:"precision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Latitude == nil || req.Longitude == nil {
		http.Error(w, "name, latitude and longitude are required", http.StatusBadRequest)
		return
	}
	if req.Precision == 0 {
		req.Precision = s.DefaultPrecision
	}

	place := &models.Place{
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Precision: req.Precision,
	}
	if err := s.Places.Create(r.Context(), place); err != nil {
		if errors.Is(err, database.ErrDuplicatePlace) {
			http.Error(w, "Place already exists", http.StatusConflict)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, place)
}

// GetPlace handles fetching place details by ID
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	if s.Places == nil {
		http.Error(w, "Place storage unavailable", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["place_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid place ID", http.StatusBadRequest)
		return
	}

	place, err := s.Places.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Place not found", http.StatusNotFound)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func RegisterRoutes(s *Server) http.Handler {
	router := mux.NewRouter()

	// Cell endpoints
	router.HandleFunc("/geohash/{hash}/bounds", s.BoundsHandler).Methods("GET")
	router.HandleFunc("/geohash/{hash}/decode", s.DecodeHandler).Methods("GET")
	router.HandleFunc("/geohash/{hash}/adjacent/{direction}", s.AdjacentHandler).Methods("GET")
	router.HandleFunc("/geohash/{hash}/neighbors", s.NeighborsHandler).Methods("GET")
	router.HandleFunc("/encode", s.EncodeHandler).Methods("GET")

	// Place endpoints
	router.HandleFunc("/places", s.CreatePlace).Methods("POST")
	router.HandleFunc("/places/{place_id}", s.GetPlace).Methods("GET")

	// Add CORS support
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.LoggingHandler(os.Stdout, cors(router))
}

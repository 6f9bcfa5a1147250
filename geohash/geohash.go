// Package geohash encodes latitude/longitude pairs into base-32 geohash cells,
// decodes cells back into bounding boxes and centre points, and walks to
// adjacent cells at the same precision.
//
// Every function is pure and safe for concurrent use.
package geohash

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// Precision limits accepted by Encode.
const (
	MinPrecision = 1
	MaxPrecision = 12
)

// fallbackPlaces is used by Decode when the cell width gives no usable log10.
const fallbackPlaces = 12

// ErrInvalidInput is returned for empty or malformed geohashes, unknown
// directions and out of range encode arguments.
var ErrInvalidInput = errors.New("invalid input")

// LatLon is a corner of a cell in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Box is the south-west/north-east extent of a cell.
type Box struct {
	SW LatLon `json:"sw"`
	NE LatLon `json:"ne"`
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p LatLon) bool {
	return p.Lat >= b.SW.Lat && p.Lat <= b.NE.Lat &&
		p.Lon >= b.SW.Lon && p.Lon <= b.NE.Lon
}

// Center returns the unrounded midpoint of the box.
func (b Box) Center() LatLon {
	return LatLon{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lon: (b.SW.Lon + b.NE.Lon) / 2,
	}
}

// Point is a decoded cell centre. Each axis is rounded to the number of
// decimal places the cell size justifies.
type Point struct {
	Lat decimal.Decimal `json:"lat"`
	Lon decimal.Decimal `json:"lon"`
}

// normalize lowercases hash and checks it against the alphabet.
func normalize(hash string) (string, error) {
	if hash == "" {
		return "", fmt.Errorf("%w: empty geohash", ErrInvalidInput)
	}
	hash = strings.ToLower(hash)
	for i := 0; i < len(hash); i++ {
		if strings.IndexByte(base32, hash[i]) < 0 {
			return "", fmt.Errorf("%w: geohash %q has bad character at %d", ErrInvalidInput, hash, i)
		}
	}
	return hash, nil
}

// Validate returns an error wrapping ErrInvalidInput if hash is not a geohash.
func Validate(hash string) error {
	_, err := normalize(hash)
	return err
}

// Bounds returns the cell denoted by hash. Input is case-insensitive.
func Bounds(hash string) (Box, error) {
	hash, err := normalize(hash)
	if err != nil {
		return Box{}, err
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	evenBit := true

	for i := 0; i < len(hash); i++ {
		idx := strings.IndexByte(base32, hash[i])
		for n := 4; n >= 0; n-- {
			bit := (idx >> uint(n)) & 1
			if evenBit {
				mid := (lonMin + lonMax) / 2
				if bit == 1 {
					lonMin = mid
				} else {
					lonMax = mid
				}
			} else {
				mid := (latMin + latMax) / 2
				if bit == 1 {
					latMin = mid
				} else {
					latMax = mid
				}
			}
			evenBit = !evenBit
		}
	}

	return Box{
		SW: LatLon{Lat: latMin, Lon: lonMin},
		NE: LatLon{Lat: latMax, Lon: lonMax},
	}, nil
}

// Decode returns the approximate centre of the cell denoted by hash.
func Decode(hash string) (Point, error) {
	box, err := Bounds(hash)
	if err != nil {
		return Point{}, err
	}
	c := box.Center()
	return Point{
		Lat: fixedPoint(c.Lat, box.SW.Lat, box.NE.Lat),
		Lon: fixedPoint(c.Lon, box.SW.Lon, box.NE.Lon),
	}, nil
}

// fixedPoint rounds v to floor(2 - log10(hi-lo)) decimal places.
func fixedPoint(v, lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places(hi - lo))
}

func places(width float64) int32 {
	if width <= 0 {
		return fallbackPlaces
	}
	p := math.Floor(2 - math.Log10(width))
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fallbackPlaces
	}
	return int32(p)
}

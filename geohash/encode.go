package geohash

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half   = decimal.New(5, -1)
	latLim = decimal.NewFromInt(90)
	lonLim = decimal.NewFromInt(180)
)

// Encode returns the geohash of length precision for the given point.
// A coordinate lying exactly on a bisection line goes to the upper
// (north or east) half.
func Encode(lat, lon decimal.Decimal, precision int) (string, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return "", fmt.Errorf("%w: precision %d not in [%d,%d]", ErrInvalidInput, precision, MinPrecision, MaxPrecision)
	}
	if lat.LessThan(latLim.Neg()) || lat.GreaterThan(latLim) {
		return "", fmt.Errorf("%w: latitude %s out of range", ErrInvalidInput, lat)
	}
	if lon.LessThan(lonLim.Neg()) || lon.GreaterThan(lonLim) {
		return "", fmt.Errorf("%w: longitude %s out of range", ErrInvalidInput, lon)
	}

	latMin, latMax := latLim.Neg(), latLim
	lonMin, lonMax := lonLim.Neg(), lonLim

	var sb strings.Builder
	sb.Grow(precision)

	idx, bit := 0, 0
	evenBit := true
	for sb.Len() < precision {
		if evenBit {
			mid := lonMin.Add(lonMax).Mul(half)
			if lon.GreaterThanOrEqual(mid) {
				idx = idx*2 + 1
				lonMin = mid
			} else {
				idx = idx * 2
				lonMax = mid
			}
		} else {
			mid := latMin.Add(latMax).Mul(half)
			if lat.GreaterThanOrEqual(mid) {
				idx = idx*2 + 1
				latMin = mid
			} else {
				idx = idx * 2
				latMax = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			sb.WriteByte(base32[idx])
			idx, bit = 0, 0
		}
	}
	return sb.String(), nil
}

// EncodeString parses lat and lon as exact decimal text and encodes them.
func EncodeString(lat, lon string, precision int) (string, error) {
	dlat, err := decimal.NewFromString(strings.TrimSpace(lat))
	if err != nil {
		return "", fmt.Errorf("%w: latitude %q: %v", ErrInvalidInput, lat, err)
	}
	dlon, err := decimal.NewFromString(strings.TrimSpace(lon))
	if err != nil {
		return "", fmt.Errorf("%w: longitude %q: %v", ErrInvalidInput, lon, err)
	}
	return Encode(dlat, dlon, precision)
}

// EncodeFloat encodes a float64 point. Prefer EncodeString when the
// coordinates come from text.
func EncodeFloat(lat, lon float64, precision int) (string, error) {
	return Encode(decimal.NewFromFloat(lat), decimal.NewFromFloat(lon), precision)
}

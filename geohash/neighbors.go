package geohash

import (
	"fmt"
	"strings"
)

// Direction is a compass direction used by Adjacent.
type Direction byte

const (
	North Direction = 'n'
	South Direction = 's'
	East  Direction = 'e'
	West  Direction = 'w'
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%q)", byte(d))
}

func (d Direction) valid() bool {
	return d == North || d == South || d == East || d == West
}

// ParseDirection accepts n, s, e, w or the full names, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "e", "east":
		return East, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrInvalidInput, s)
}

// Indexed by hash length parity: [0] even, [1] odd.
var neighborTable = map[Direction][2]string{
	North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
	South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
	East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
	West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
}

var borderTable = map[Direction][2]string{
	North: {"prxz", "bcfguvyz"},
	South: {"028b", "0145hjnp"},
	East:  {"bcfguvyz", "prxz"},
	West:  {"0145hjnp", "028b"},
}

// Neighbors holds the eight cells surrounding a geohash.
type Neighbors struct {
	N  string `json:"n"`
	NE string `json:"ne"`
	E  string `json:"e"`
	SE string `json:"se"`
	S  string `json:"s"`
	SW string `json:"sw"`
	W  string `json:"w"`
	NW string `json:"nw"`
}

// Adjacent returns the cell next to hash in direction dir, with the same
// length as hash. Cells on the antimeridian wrap around.
func Adjacent(hash string, dir Direction) (string, error) {
	if !dir.valid() {
		return "", fmt.Errorf("%w: direction %q", ErrInvalidInput, byte(dir))
	}
	hash, err := normalize(hash)
	if err != nil {
		return "", err
	}
	return adjacent(hash, dir), nil
}

// adjacent expects a normalized, non-empty hash.
func adjacent(hash string, dir Direction) string {
	last := hash[len(hash)-1]
	parent := hash[:len(hash)-1]
	typ := len(hash) % 2

	// the neighbour is outside the parent cell, so move the parent first
	if parent != "" && strings.IndexByte(borderTable[dir][typ], last) >= 0 {
		parent = adjacent(parent, dir)
	}

	i := strings.IndexByte(neighborTable[dir][typ], last)
	return parent + string(base32[i])
}

// AllNeighbors returns the eight cells surrounding hash.
func AllNeighbors(hash string) (Neighbors, error) {
	hash, err := normalize(hash)
	if err != nil {
		return Neighbors{}, err
	}
	n := adjacent(hash, North)
	s := adjacent(hash, South)
	return Neighbors{
		N:  n,
		NE: adjacent(n, East),
		E:  adjacent(hash, East),
		SE: adjacent(s, East),
		S:  s,
		SW: adjacent(s, West),
		W:  adjacent(hash, West),
		NW: adjacent(n, West),
	}, nil
}

// Slice returns the neighbours clockwise from north.
func (n Neighbors) Slice() []string {
	return []string{n.N, n.NE, n.E, n.SE, n.S, n.SW, n.W, n.NW}
}

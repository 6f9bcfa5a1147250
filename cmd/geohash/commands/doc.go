// Package commands defines the geohash CLI.
//
// Commands
//
//   - bounds     Print the south-west and north-east corners of a cell
//   - decode     Print the centre of a cell
//   - encode     Encode a latitude/longitude pair
//   - adjacent   Print the neighbouring cell in one direction
//   - neighbors  Print the eight cells around a geohash
//
// Every command accepts --json to print the result as JSON instead of text.
package commands

package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

var asJSON bool

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "geohash",
		Short:        "Encode, decode and walk geohash cells",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	root.AddCommand(boundsCmd(), decodeCmd(), encodeCmd(), adjacentCmd(), neighborsCmd())
	return root
}

func Execute() error {
	return newRoot().Execute()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

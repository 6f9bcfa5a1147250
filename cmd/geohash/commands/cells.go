package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"geohash-service/geohash"
)

func boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <geohash>",
		Short: "Print the corners of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := geohash.Bounds(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, box)
			}
			fmt.Fprintf(out, "sw: %v,%v\nne: %v,%v\n", box.SW.Lat, box.SW.Lon, box.NE.Lat, box.NE.Lon)
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <geohash>",
		Short: "Print the centre of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := geohash.Decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, p)
			}
			fmt.Fprintf(out, "%s,%s\n", p.Lat, p.Lon)
			return nil
		},
	}
}

// Negative coordinates must follow "--" or they parse as shorthand flags.
func encodeCmd() *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:     "encode [flags] [--] <lat> <lon>",
		Short:   "Encode a point",
		Example: "  geohash encode -p 7 -- 70.2995 -27.9993",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := geohash.EncodeString(args[0], args[1], precision)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, map[string]string{"geohash": hash})
			}
			fmt.Fprintln(out, hash)
			return nil
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 9,
		"geohash length, "+strconv.Itoa(geohash.MinPrecision)+" to "+strconv.Itoa(geohash.MaxPrecision))
	return cmd
}

func adjacentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacent <geohash> <n|s|e|w>",
		Short: "Print the neighbouring cell in one direction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := geohash.ParseDirection(args[1])
			if err != nil {
				return err
			}
			hash, err := geohash.Adjacent(args[0], dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, map[string]string{"geohash": hash})
			}
			fmt.Fprintln(out, hash)
			return nil
		},
	}
}

func neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <geohash>",
		Short: "Print the eight cells around a geohash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := geohash.AllNeighbors(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, nb)
			}
			fmt.Fprintf(out, "%s %s %s\n", nb.NW, nb.N, nb.NE)
			fmt.Fprintf(out, "%s %s %s\n", nb.W, strings.ToLower(args[0]), nb.E)
			fmt.Fprintf(out, "%s %s %s\n", nb.SW, nb.S, nb.SE)
			return nil
		},
	}
}

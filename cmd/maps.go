package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var mapsPromoted bool

func init() {
	mapsCmd.Flags().BoolVar(&mapsPromoted, "promoted", false, "List promoted maps only")
	rootCmd.AddCommand(mapsCmd)
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List published topic maps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }() // safe to ignore

		ctx := cmd.Context()
		list := s.GetPublishedMaps
		if mapsPromoted {
			list = s.GetPromotedMaps
		}
		maps, err := list(ctx)
		if err != nil {
			return err
		}

		fmt.Println(oj.JSON(maps, 2))
		return nil
	},
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// scoreCmd prints one city's score, creating the base score on first lookup.
var scoreCmd = &cobra.Command{
	Use:   "score <city>",
	Short: "Show a city's livability score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStores, err := newService()
		if err != nil {
			return err
		}
		defer closeStores()

		sc, err := svc.CityScore(context.Background(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s), updated %s\n", sc.City, sc.Country, sc.UpdatedAt)
		fmt.Fprintf(out, "  quality_of_life: %d\n", sc.QualityOfLife)
		fmt.Fprintf(out, "  safety:          %d\n", sc.Safety)
		fmt.Fprintf(out, "  economy:         %d\n", sc.Economy)
		fmt.Fprintf(out, "  culture:         %d\n", sc.Culture)
		fmt.Fprintf(out, "  total:           %d\n", sc.TotalScore())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

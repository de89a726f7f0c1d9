package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var citiesLimit int

// citiesCmd prints the city ranking. Ascending by total score: the ranking
// surfaces the worst-scoring cities first.
var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Rank cities by total score, lowest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStores, err := newService()
		if err != nil {
			return err
		}
		defer closeStores()

		scores, err := svc.TopCities(context.Background(), citiesLimit)
		if err != nil {
			return err
		}
		for i, sc := range scores {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-20s %-15s total=%d (qol=%d safety=%d economy=%d culture=%d)\n",
				i+1, sc.City, sc.Country, sc.TotalScore(),
				sc.QualityOfLife, sc.Safety, sc.Economy, sc.Culture)
		}
		return nil
	},
}

func init() {
	citiesCmd.Flags().IntVar(&citiesLimit, "limit", 10, "maximum number of cities")
	rootCmd.AddCommand(citiesCmd)
}

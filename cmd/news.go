package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"citypulse/internal/model"
)

var (
	newsLimit int
	newsCity  string
)

// newsCmd prints the latest news, globally or for one city.
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the latest news, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStores, err := newService()
		if err != nil {
			return err
		}
		defer closeStores()

		ctx := context.Background()
		var items []model.NewsItem
		if newsCity != "" {
			items, err = svc.LatestNewsInCity(ctx, newsCity, newsLimit)
		} else {
			items, err = svc.LatestNews(ctx, newsLimit)
		}
		if err != nil {
			return err
		}
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %s [%s]\n",
				it.Date, it.City, it.Headline, strings.Join(it.Tags, ","))
		}
		return nil
	},
}

func init() {
	newsCmd.Flags().IntVar(&newsLimit, "limit", 10, "maximum number of items")
	newsCmd.Flags().StringVar(&newsCity, "city", "", "restrict to one city")
	rootCmd.AddCommand(newsCmd)
}

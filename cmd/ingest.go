package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"citypulse/internal/model"
)

var (
	ingestHeadline string
	ingestSource   string
	ingestDate     string
	ingestCity     string
	ingestCountry  string
	ingestTags     []string
	ingestFile     string
)

// ingestCmd submits one news item from flags, or a batch from a YAML file.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest tagged news and update the city's score",
	Example: `  citypulse ingest --headline "Tech Innovation Hub Opens in Paris" \
    --source TechNews --city Paris --country France --tags innovation,economy
  citypulse ingest --file seed.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStores, err := newService()
		if err != nil {
			return err
		}
		defer closeStores()

		items, err := ingestCandidates()
		if err != nil {
			return err
		}

		ctx := context.Background()
		for _, it := range items {
			saved, err := svc.IngestNews(ctx, it)
			if err != nil {
				return err
			}
			slog.Info("news ingested", "id", saved.ID, "city", saved.City, "tags", saved.Tags)
			fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
		}
		return nil
	},
}

func ingestCandidates() ([]model.NewsItem, error) {
	if ingestFile != "" {
		b, err := os.ReadFile(ingestFile)
		if err != nil {
			return nil, err
		}
		var items []model.NewsItem
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ingestFile, err)
		}
		return items, nil
	}
	return []model.NewsItem{{
		Headline: ingestHeadline,
		Source:   ingestSource,
		Date:     ingestDate,
		City:     ingestCity,
		Country:  ingestCountry,
		Tags:     ingestTags,
	}}, nil
}

func init() {
	ingestCmd.Flags().StringVar(&ingestHeadline, "headline", "", "news headline")
	ingestCmd.Flags().StringVar(&ingestSource, "source", "", "news source")
	ingestCmd.Flags().StringVar(&ingestDate, "date", "", "publication date (YYYY-MM-DD, default today)")
	ingestCmd.Flags().StringVar(&ingestCity, "city", "", "originating city")
	ingestCmd.Flags().StringVar(&ingestCountry, "country", "", "originating country")
	ingestCmd.Flags().StringSliceVar(&ingestTags, "tags", nil, "comma-separated tags")
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "YAML file with a list of news items")
	rootCmd.AddCommand(ingestCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/items"
)

var (
	searchCategory string
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the item catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict to one slot category")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Search is catalog-only; no store connection needed
	engine := builder.New(catalog.Default())

	found := engine.Catalog().Search(args[0], items.Category(searchCategory), searchLimit)
	for _, it := range found {
		cmd.Printf("%-14s %-30s %s\n", it.Category, it.Name, it.ID)
	}
	return nil
}

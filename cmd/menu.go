package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/princinho/menufront/filter"
	"github.com/princinho/menufront/models"
)

var menuCriteria filter.Criteria

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the public menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := newClient().LoadMenu(cmd.Context())
		if err != nil {
			return explain(err)
		}
		items := filter.Apply(menu.Items, menuCriteria)
		printProducts(cmd.OutOrStdout(), items, menu.Categories)
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d items\n", len(items), len(menu.Items))
		return nil
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuCriteria.Category, "category", filter.AllCategories, "category id, or all")
	menuCmd.Flags().StringVar(&menuCriteria.Search, "search", "", "text to look for in names and descriptions")
}

func printProducts(out io.Writer, items []models.Product, cats []models.Category) {
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTYPE\tPRICE\tAVAILABLE")
	for _, p := range items {
		cat, ok := names[p.Category]
		if !ok {
			cat = p.Category
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n", p.ID, p.Name, cat, p.Type.Label(), p.DisplayPrice(), p.IsAvailable)
	}
	_ = w.Flush()
}

func printCategories(out io.Writer, cats []models.Category, counts map[string]int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tITEMS\tDESCRIPTION")
	for _, c := range cats {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.ID, c.Name, counts[c.ID], c.Description)
	}
	_ = w.Flush()
}

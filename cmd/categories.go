package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/filter"
	"github.com/princinho/menufront/forms"
	"github.com/princinho/menufront/validation"
)

var (
	categoryForm   dto.CategoryForm
	categorySearch string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage menu categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their item counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := newClient().LoadAdmin(cmd.Context())
		if err != nil {
			return explain(err)
		}
		printCategories(cmd.OutOrStdout(), filter.Categories(menu.Categories, categorySearch), filter.CountByCategory(menu.Items))
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		return submitCategory(cmd, client.CreateCategory, "category added")
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename or describe a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		return submitCategory(cmd, func(ctx context.Context, f dto.CategoryForm) error {
			return client.UpdateCategory(ctx, args[0], f)
		}, "category saved")
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().DeleteCategory(cmd.Context(), args[0]); err != nil {
			return explain(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "category deleted")
		return nil
	},
}

func submitCategory(cmd *cobra.Command, send func(context.Context, dto.CategoryForm) error, done string) error {
	form := forms.New(categoryForm)
	if err := form.Submit(cmd.Context(), validation.Category, send); err != nil {
		return explain(err)
	}
	if !form.Succeeded() {
		return fmt.Errorf("%s", form.Validation.Error())
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{categoriesAddCmd, categoriesUpdateCmd} {
		c.Flags().StringVar(&categoryForm.Name, "name", "", "category name")
		c.Flags().StringVar(&categoryForm.Description, "description", "", "category description")
	}
	categoriesListCmd.Flags().StringVar(&categorySearch, "search", "", "text to look for in category names")
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesUpdateCmd, categoriesDeleteCmd)
}

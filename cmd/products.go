package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/filter"
	"github.com/princinho/menufront/forms"
	"github.com/princinho/menufront/utils"
	"github.com/princinho/menufront/validation"
)

var (
	productForm     dto.ProductForm
	productImage    string
	productCriteria filter.Criteria
)

var productsCmd = &cobra.Command{
	Use:     "products",
	Aliases: []string{"items"},
	Short:   "Manage menu items",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every item, including unavailable ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := newClient().LoadAdmin(cmd.Context())
		if err != nil {
			return explain(err)
		}
		printProducts(cmd.OutOrStdout(), filter.Apply(menu.Items, productCriteria), menu.Categories)
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		return submitProduct(cmd, productForm, func(ctx context.Context, in api.ItemInput) error {
			return client.CreateItem(ctx, in)
		}, "item added")
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an item; flags not given keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		current, found, err := client.Item(cmd.Context(), args[0])
		if err != nil {
			return explain(err)
		}
		if !found {
			return fmt.Errorf("no item with id %q", args[0])
		}

		f := dto.ProductForm{
			Name:         current.Name,
			Description:  current.Description,
			Price:        strconv.FormatFloat(current.Price, 'f', -1, 64),
			Category:     current.Category,
			Type:         string(current.Type),
			ImageURL:     current.Image,
			CurrentImage: current.Image,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			f.Name = productForm.Name
		}
		if flags.Changed("description") {
			f.Description = productForm.Description
		}
		if flags.Changed("price") {
			f.Price = productForm.Price
		}
		if flags.Changed("category") {
			f.Category = productForm.Category
		}
		if flags.Changed("type") {
			f.Type = productForm.Type
		}
		if flags.Changed("image-url") {
			f.ImageURL = productForm.ImageURL
		}

		return submitProduct(cmd, f, func(ctx context.Context, in api.ItemInput) error {
			return client.UpdateItem(ctx, args[0], in)
		}, "item saved")
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().DeleteItem(cmd.Context(), args[0]); err != nil {
			return explain(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "item deleted")
		return nil
	},
}

func submitProduct(cmd *cobra.Command, f dto.ProductForm, send func(context.Context, api.ItemInput) error, done string) error {
	if productImage != "" {
		upload, err := dto.UploadFromPath(productImage)
		if err != nil {
			return fmt.Errorf("image: %w", err)
		}
		f.Image = upload
	}

	images := utils.NewImageValidator()
	form := forms.New(f)
	err := form.Submit(cmd.Context(), func(f dto.ProductForm) validation.Result {
		return validation.Product(f, images)
	}, func(ctx context.Context, f dto.ProductForm) error {
		return send(ctx, api.NewItemInput(f))
	})
	if err != nil {
		return explain(err)
	}
	if !form.Succeeded() {
		return fmt.Errorf("%s", form.Validation.Error())
	}
	for _, w := range form.Validation.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productForm.Name, "name", "", "item name")
		c.Flags().StringVar(&productForm.Description, "description", "", "item description")
		c.Flags().StringVar(&productForm.Price, "price", "", "price, greater than zero")
		c.Flags().StringVar(&productForm.Category, "category", "", "category id")
		c.Flags().StringVar(&productForm.Type, "type", "food", "food, hot or cold")
		c.Flags().StringVar(&productForm.ImageURL, "image-url", "", "link to the item picture")
		c.Flags().StringVar(&productImage, "image", "", "picture file to upload instead of a link")
	}
	productsListCmd.Flags().StringVar(&productCriteria.Category, "category", filter.AllCategories, "category id, or all")
	productsListCmd.Flags().StringVar(&productCriteria.Search, "search", "", "text to look for in names and descriptions")
	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsUpdateCmd, productsDeleteCmd)
}

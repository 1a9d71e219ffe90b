package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/princinho/menufront/models"
)

// Menu is a category list and item list fetched together.
type Menu struct {
	Categories []models.Category `json:"categories"`
	Items      []models.Product  `json:"items"`
}

// LoadMenu fetches the public categories and items in parallel.
func (c *Client) LoadMenu(ctx context.Context) (*Menu, error) {
	return c.load(ctx, c.PublicCategories, c.PublicItems)
}

// LoadAdmin fetches the admin categories and items in parallel.
func (c *Client) LoadAdmin(ctx context.Context) (*Menu, error) {
	return c.load(ctx, c.Categories, c.Items)
}

func (c *Client) load(
	ctx context.Context,
	categories func(context.Context) ([]models.Category, error),
	items func(context.Context) ([]models.Product, error),
) (*Menu, error) {
	var m Menu
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := categories(gctx)
		m.Categories = cats
		return err
	})
	g.Go(func() error {
		its, err := items(gctx)
		m.Items = its
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the caller went away while we were waiting; its view is stale
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

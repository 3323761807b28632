// Package form holds the state of the product form screen and drives the
// product store from it.
//
// The form is either creating a new product or editing an existing one; see
// Mode. Submit, Refresh, Delete and SelectForEdit are the only operations that
// change the state. A Controller is not safe for concurrent use; it serves a
// single client and callers serialize access.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
)

// Action tells what a successful Submit did.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	// ActionMissing means the edited product no longer existed; nothing was written.
	ActionMissing Action = "missing"
)

// SubmitResult describes a successful Submit. ID is the created or edited product.
type SubmitResult struct {
	Action Action `json:"action"`
	ID     int    `json:"id"`
}

// State is a snapshot of the form used for rendering.
type State struct {
	Mode       Mode
	Name       string
	Quantity   string
	SearchTerm string
	Products   []models.Product
}

// Controller owns the form state and the store it writes to.
type Controller struct {
	store  repo.ProductRepository
	logger *slog.Logger

	mode       Mode
	name       string
	quantity   string
	searchTerm string
	products   []models.Product
}

// NewController returns a controller in Creating mode with an empty list.
// Call Refresh to load the products.
func NewController(store repo.ProductRepository, logger *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		logger:   logger,
		products: []models.Product{},
	}
}

// Mode reports whether the form is creating or editing.
func (c *Controller) Mode() Mode {
	return c.mode
}

// State returns a copy of the current form state.
func (c *Controller) State() State {
	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return State{
		Mode:       c.mode,
		Name:       c.name,
		Quantity:   c.quantity,
		SearchTerm: c.searchTerm,
		Products:   products,
	}
}

// SetName stores the product name text.
func (c *Controller) SetName(name string) {
	c.name = name
}

// SetQuantity stores the raw quantity text; it is validated on Submit.
func (c *Controller) SetQuantity(quantity string) {
	c.quantity = quantity
}

// SetSearchTerm changes the search term and reloads the list when it changed.
// If the reload fails the previous term is kept, so the term always matches
// the loaded list and a retry with the same term reloads again.
func (c *Controller) SetSearchTerm(ctx context.Context, term string) error {
	if term == c.searchTerm {
		return nil
	}
	previous := c.searchTerm
	c.searchTerm = term
	if err := c.Refresh(ctx); err != nil {
		c.searchTerm = previous
		return err
	}
	return nil
}

// Refresh replaces the product list with the products matching the search term.
// On failure the previous list is kept.
func (c *Controller) Refresh(ctx context.Context) error {
	products, err := c.store.Read(ctx, c.searchTerm)
	if err != nil {
		c.logger.ErrorContext(ctx, "could not list products",
			slog.String("search", c.searchTerm), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	c.products = products
	return nil
}

// Submit validates the form and creates or updates a product depending on the
// mode. On success the fields and search term are cleared, the form returns to
// Creating and the list is reloaded. On failure the state is left unchanged.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	quantity, err := parseQuantity(c.quantity)
	if err != nil {
		c.logger.InfoContext(ctx, "rejected product form",
			slog.String("quantity", c.quantity), slog.Any("error", err))
		return SubmitResult{}, err
	}

	var result SubmitResult
	if id, editing := c.mode.Editing(); editing {
		result, err = c.update(ctx, id, quantity)
	} else {
		result, err = c.create(ctx, quantity)
	}
	if err != nil {
		return SubmitResult{}, err
	}

	c.mode = Creating()
	c.name = ""
	c.quantity = ""
	c.searchTerm = ""
	if err := c.Refresh(ctx); err != nil {
		// the product is saved; the stale list is only logged
		c.logger.WarnContext(ctx, "product saved but list not refreshed", slog.Int("id", result.ID))
	}
	return result, nil
}

func (c *Controller) create(ctx context.Context, quantity int) (SubmitResult, error) {
	p, err := c.store.Create(ctx, c.name, quantity)
	if err != nil {
		c.logger.ErrorContext(ctx, "could not create product",
			slog.String("name", c.name), slog.Int("quantity", quantity), slog.Any("error", err))
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	c.logger.InfoContext(ctx, "product created", slog.Int("id", p.ID))
	return SubmitResult{Action: ActionCreated, ID: p.ID}, nil
}

func (c *Controller) update(ctx context.Context, id, quantity int) (SubmitResult, error) {
	err := c.store.Update(ctx, id, c.name, quantity)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		c.logger.WarnContext(ctx, "edited product no longer exists", slog.Int("id", id))
		return SubmitResult{Action: ActionMissing, ID: id}, nil
	case err != nil:
		c.logger.ErrorContext(ctx, "could not update product",
			slog.Int("id", id), slog.Any("error", err))
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	c.logger.InfoContext(ctx, "product updated", slog.Int("id", id))
	return SubmitResult{Action: ActionUpdated, ID: id}, nil
}

// Delete removes product id and reloads the list. Removing an unknown id is a
// no-op. If id is the product being edited, the form goes back to Creating
// with empty fields.
func (c *Controller) Delete(ctx context.Context, id int) error {
	err := c.store.Remove(ctx, id)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		c.logger.WarnContext(ctx, "deleted product did not exist", slog.Int("id", id))
	case err != nil:
		c.logger.ErrorContext(ctx, "could not delete product",
			slog.Int("id", id), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	if editID, editing := c.mode.Editing(); editing && editID == id {
		c.mode = Creating()
		c.name = ""
		c.quantity = ""
	}
	return c.Refresh(ctx)
}

// SelectForEdit loads p into the form and switches to editing it.
func (c *Controller) SelectForEdit(p models.Product) {
	c.name = p.Name
	c.quantity = strconv.Itoa(p.Quantity)
	c.mode = Editing(p.ID)
}

// Lookup finds a product in the loaded list.
func (c *Controller) Lookup(id int) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

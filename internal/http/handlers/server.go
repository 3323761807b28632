package handlers

import (
	"log/slog"
	"sync"

	"github.com/rogerio-castellano/inventory-form/internal/form"
	repo "github.com/rogerio-castellano/inventory-form/internal/repo"
)

// Handlers exposes one form controller over HTTP. The controller serves a
// single client, so every call into it holds mu.
type Handlers struct {
	mu          sync.Mutex
	form        *form.Controller
	productRepo repo.ProductRepository
	logger      *slog.Logger
}

func NewHandlers(controller *form.Controller, productRepo repo.ProductRepository, logger *slog.Logger) *Handlers {
	return &Handlers{
		form:        controller,
		productRepo: productRepo,
		logger:      logger,
	}
}

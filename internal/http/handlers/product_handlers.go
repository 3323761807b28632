package handlers

import (
	"net/http"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Reloads the list using the current search term
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func (h *Handlers) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	err := h.form.Refresh(r.Context())
	state := h.form.State()
	h.mu.Unlock()

	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	h.respond(w, r, http.StatusOK, toProductResponses(state.Products))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func (h *Handlers) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	err = h.form.Delete(r.Context(), id)
	h.mu.Unlock()

	if err != nil {
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

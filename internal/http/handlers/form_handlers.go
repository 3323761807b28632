package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/inventory-form/internal/form"
)

// GetFormHandler godoc
// @Summary Current form state
// @Description Mode, field values, search term and the loaded product list
// @Tags form
// @Produce json
// @Success 200 {object} FormResponse
// @Router /form [get]
func (h *Handlers) GetFormHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	state := h.form.State()
	h.mu.Unlock()

	h.respond(w, r, http.StatusOK, toFormResponse(state))
}

// SetFieldsHandler godoc
// @Summary Set the form fields
// @Description Stores name and quantity text; quantity is validated on submit
// @Tags form
// @Accept json
// @Produce json
// @Param fields body FormFieldsRequest true "Field values"
// @Success 200 {object} FormResponse
// @Failure 400 {string} string "Invalid input"
// @Router /form [put]
func (h *Handlers) SetFieldsHandler(w http.ResponseWriter, r *http.Request) {
	var req FormFieldsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.form.SetName(req.Name)
	h.form.SetQuantity(req.Quantity)
	state := h.form.State()
	h.mu.Unlock()

	h.respond(w, r, http.StatusOK, toFormResponse(state))
}

// SetSearchHandler godoc
// @Summary Set the search term
// @Description Changes the search term and reloads the product list
// @Tags form
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} FormResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /form/search [put]
func (h *Handlers) SetSearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	err := h.form.SetSearchTerm(r.Context(), req.Term)
	state := h.form.State()
	h.mu.Unlock()

	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	h.respond(w, r, http.StatusOK, toFormResponse(state))
}

// SubmitFormHandler godoc
// @Summary Save the form
// @Description Creates a product, or updates the selected one when editing
// @Tags form
// @Produce json
// @Success 201 {object} SubmitResponse
// @Success 200 {object} SubmitResponse
// @Failure 400 {array} form.ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /form/submit [post]
func (h *Handlers) SubmitFormHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	res, err := h.form.Submit(r.Context())
	h.mu.Unlock()

	if err != nil {
		var validationErr *form.ValidationError
		if errors.As(err, &validationErr) {
			h.respond(w, r, http.StatusBadRequest, []form.ValidationError{*validationErr})
			return
		}
		http.Error(w, "could not save product", http.StatusInternalServerError)
		return
	}

	switch res.Action {
	case form.ActionCreated:
		h.respond(w, r, http.StatusCreated, SubmitResponse{
			Message: fmt.Sprintf("product created with id %d", res.ID),
			Action:  string(res.Action),
			Id:      res.ID,
		})
	case form.ActionUpdated:
		h.respond(w, r, http.StatusOK, SubmitResponse{Message: "product updated", Action: string(res.Action), Id: res.ID})
	default:
		h.respond(w, r, http.StatusOK, SubmitResponse{Message: "product no longer exists", Action: string(res.Action), Id: res.ID})
	}
}

// SelectProductHandler godoc
// @Summary Select a product for editing
// @Description Loads a product from the current list into the form
// @Tags form
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} FormResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /form/select/{id} [post]
func (h *Handlers) SelectProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	p, found := h.form.Lookup(id)
	if found {
		h.form.SelectForEdit(p)
	}
	state := h.form.State()
	h.mu.Unlock()

	if !found {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	h.respond(w, r, http.StatusOK, toFormResponse(state))
}

package handlers

import (
	"github.com/rogerio-castellano/inventory-form/internal/form"
	"github.com/rogerio-castellano/inventory-form/internal/models"
)

type FormFieldsRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type ProductResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type FormResponse struct {
	Mode       string            `json:"mode"`
	SelectedId *int              `json:"selected_id,omitempty"`
	Name       string            `json:"name"`
	Quantity   string            `json:"quantity"`
	Search     string            `json:"search"`
	Products   []ProductResponse `json:"products"`
}

type SubmitResponse struct {
	Message string `json:"message"`
	Action  string `json:"action"`
	Id      int    `json:"id"`
}

func toProductResponses(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = ProductResponse{Id: p.ID, Name: p.Name, Quantity: p.Quantity}
	}
	return resp
}

func toFormResponse(s form.State) FormResponse {
	resp := FormResponse{
		Mode:     "creating",
		Name:     s.Name,
		Quantity: s.Quantity,
		Search:   s.SearchTerm,
		Products: toProductResponses(s.Products),
	}
	if id, editing := s.Mode.Editing(); editing {
		resp.Mode = "editing"
		resp.SelectedId = &id
	}
	return resp
}

package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-form/internal/form"
	api "github.com/rogerio-castellano/inventory-form/internal/http"
	"github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-form/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-form/internal/logger"
	repo "github.com/rogerio-castellano/inventory-form/internal/repo"
)

func newTestRouter(t *testing.T) (http.Handler, *repo.InMemoryProductRepository) {
	t.Helper()
	store := repo.NewInMemoryProductRepository()
	log := logger.Discard()
	h := handlers.NewHandlers(form.NewController(store, log), store, log)
	return api.NewRouter(h, rl.New(1000, 1000), log, nil), store
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("error encoding body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func TestSubmitFormHandler_CreateThenEdit(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPut, "/form", handlers.FormFieldsRequest{Name: "Rice", Quantity: "10"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/form/submit", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	created := decode[handlers.SubmitResponse](t, w)
	if created.Id != 1 || created.Message != "product created with id 1" {
		t.Errorf("unexpected create response: %+v", created)
	}

	w = do(t, r, http.MethodPost, "/form/select/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	state := decode[handlers.FormResponse](t, w)
	if state.Mode != "editing" || state.SelectedId == nil || *state.SelectedId != 1 {
		t.Fatalf("expected editing product 1, got %+v", state)
	}
	if state.Name != "Rice" || state.Quantity != "10" {
		t.Errorf("expected fields Rice/10, got %s/%s", state.Name, state.Quantity)
	}

	do(t, r, http.MethodPut, "/form", handlers.FormFieldsRequest{Name: "Rice", Quantity: "15"})
	w = do(t, r, http.MethodPost, "/form/submit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if updated := decode[handlers.SubmitResponse](t, w); updated.Action != "updated" {
		t.Errorf("expected action updated, got %s", updated.Action)
	}

	w = do(t, r, http.MethodGet, "/form", nil)
	state = decode[handlers.FormResponse](t, w)
	if state.Mode != "creating" || state.SelectedId != nil {
		t.Errorf("expected creating mode after submit, got %+v", state)
	}
	if len(state.Products) != 1 || state.Products[0].Quantity != 15 {
		t.Errorf("expected one product with quantity 15, got %+v", state.Products)
	}
}

func TestSubmitFormHandler_InvalidQuantity(t *testing.T) {
	r, store := newTestRouter(t)

	tests := []string{"abc", "", "-3", "2.5", "3000000000"}
	for _, quantity := range tests {
		t.Run(quantity, func(t *testing.T) {
			do(t, r, http.MethodPut, "/form", handlers.FormFieldsRequest{Name: "Rice", Quantity: quantity})
			w := do(t, r, http.MethodPost, "/form/submit", nil)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			errs := decode[[]form.ValidationError](t, w)
			if len(errs) != 1 || errs[0].Field != "quantity" {
				t.Errorf("expected one quantity error, got %+v", errs)
			}
		})
	}

	products, err := store.Read(t.Context(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected no products stored, got %d", len(products))
	}
}

func TestSubmitFormHandler_EditedProductDeleted(t *testing.T) {
	r, store := newTestRouter(t)
	p, _ := store.Create(t.Context(), "Rice", 10)
	do(t, r, http.MethodGet, "/products", nil)
	do(t, r, http.MethodPost, "/form/select/1", nil)

	if err := store.Remove(t.Context(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := do(t, r, http.MethodPost, "/form/submit", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if resp := decode[handlers.SubmitResponse](t, w); resp.Action != "missing" {
		t.Errorf("expected action missing, got %s", resp.Action)
	}
}

func TestSetSearchHandler(t *testing.T) {
	r, store := newTestRouter(t)
	for _, name := range []string{"Rice", "Beans", "Brown RICE"} {
		if _, err := store.Create(t.Context(), name, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	w := do(t, r, http.MethodPut, "/form/search", handlers.SearchRequest{Term: "rice"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	state := decode[handlers.FormResponse](t, w)
	if state.Search != "rice" {
		t.Errorf("expected search 'rice', got %q", state.Search)
	}
	if len(state.Products) != 2 || state.Products[0].Name != "Rice" || state.Products[1].Name != "Brown RICE" {
		t.Errorf("unexpected products: %+v", state.Products)
	}

	w = do(t, r, http.MethodGet, "/products", nil)
	if got := decode[[]handlers.ProductResponse](t, w); len(got) != 2 {
		t.Errorf("expected list to keep the search term, got %d products", len(got))
	}
}

func TestSetSearchHandler_MalformedJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/form/search", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestSelectProductHandler(t *testing.T) {
	r, store := newTestRouter(t)
	if _, err := store.Create(t.Context(), "Rice", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		path string
		code int
	}{
		{"not loaded yet", "/form/select/1", http.StatusNotFound},
		{"invalid id", "/form/select/abc", http.StatusBadRequest},
		{"zero id", "/form/select/0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, nil)
			if w.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestDeleteProductHandler(t *testing.T) {
	r, store := newTestRouter(t)
	if _, err := store.Create(t.Context(), "Rice", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	do(t, r, http.MethodGet, "/products", nil)
	do(t, r, http.MethodPost, "/form/select/1", nil)

	w := do(t, r, http.MethodDelete, "/products/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	state := decode[handlers.FormResponse](t, do(t, r, http.MethodGet, "/form", nil))
	if state.Mode != "creating" || state.Name != "" || len(state.Products) != 0 {
		t.Errorf("expected cleared form after deleting the edited product, got %+v", state)
	}

	w = do(t, r, http.MethodDelete, "/products/1", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected deleting a missing product to succeed, got %d", w.Code)
	}

	w = do(t, r, http.MethodDelete, "/products/x", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	r, store := newTestRouter(t)
	for _, q := range []int{0, 4, 6} {
		if _, err := store.Create(t.Context(), "item", q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	w := do(t, r, http.MethodGet, "/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	got := decode[repo.Summary](t, w)
	want := repo.Summary{TotalProducts: 3, TotalQuantity: 10, OutOfStock: 1}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	store := repo.NewInMemoryProductRepository()
	log := logger.Discard()
	h := handlers.NewHandlers(form.NewController(store, log), store, log)
	r := api.NewRouter(h, rl.New(0.001, 1), log, nil)

	if w := do(t, r, http.MethodPut, "/form/search", handlers.SearchRequest{Term: "a"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPut, "/form/search", handlers.SearchRequest{Term: "b"}); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 Too Many Requests, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/form", nil); w.Code != http.StatusOK {
		t.Errorf("expected reads to bypass the limiter, got %d", w.Code)
	}
}

package repo

import "context"

// Summary holds the dashboard figures for the whole inventory.
type Summary struct {
	TotalProducts int `json:"total_products"`
	TotalQuantity int `json:"total_quantity"`
	OutOfStock    int `json:"out_of_stock"`
}

// Summarize computes a Summary from every product in r.
func Summarize(ctx context.Context, r ProductRepository) (Summary, error) {
	products, err := r.Read(ctx, "")
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	s.TotalProducts = len(products)
	for _, p := range products {
		s.TotalQuantity += p.Quantity
		if p.Quantity == 0 {
			s.OutOfStock++
		}
	}
	return s, nil
}

package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxQuantity is the largest value the INTEGER quantity columns hold.
const maxQuantity = math.MaxInt32

type productInput struct {
	Quantity string `validate:"required,number"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseQuantity accepts a whole number between 0 and maxQuantity, surrounding
// spaces allowed.
func parseQuantity(raw string) (int, error) {
	in := productInput{Quantity: strings.TrimSpace(raw)}
	invalid := &ValidationError{Field: "quantity", Description: "quantity must be a number"}

	if err := validate.Struct(in); err != nil {
		return 0, invalid
	}
	n, err := strconv.Atoi(in.Quantity)
	if err != nil || n > maxQuantity {
		return 0, invalid
	}
	return n, nil
}

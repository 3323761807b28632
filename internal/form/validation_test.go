package form

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw   string
		want  int
		valid bool
	}{
		{raw: "0", want: 0, valid: true},
		{raw: " 15 ", want: 15, valid: true},
		{raw: strconv.Itoa(maxQuantity), want: maxQuantity, valid: true},
		{raw: "2147483648"},
		{raw: "3000000000"},
		{raw: "abc"},
		{raw: ""},
		{raw: "-1"},
		{raw: "1e3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseQuantity(tt.raw)
			if !tt.valid {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "quantity", validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

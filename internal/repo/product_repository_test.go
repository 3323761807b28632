package repo_test

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testProductRepository runs the behaviour every ProductRepository must share.
// newRepo must return an empty repository.
func testProductRepository(t *testing.T, newRepo func(t *testing.T) repo.ProductRepository) {
	t.Run("create then read includes the product", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		rice, err := r.Create(ctx, "Rice", 10)
		require.NoError(t, err)
		assert.Equal(t, 1, rice.ID)

		beans, err := r.Create(ctx, "Beans", 3)
		require.NoError(t, err)
		assert.NotEqual(t, rice.ID, beans.ID)

		all, err := r.Read(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []models.Product{
			{ID: rice.ID, Name: "Rice", Quantity: 10},
			{ID: beans.ID, Name: "Beans", Quantity: 3},
		}, all)
	})

	t.Run("read on empty store", func(t *testing.T) {
		r := newRepo(t)

		all, err := r.Read(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("update keeps the id", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		p, err := r.Create(ctx, "Rice", 10)
		require.NoError(t, err)

		require.NoError(t, r.Update(ctx, p.ID, "Brown rice", 15))

		all, err := r.Read(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []models.Product{{ID: p.ID, Name: "Brown rice", Quantity: 15}}, all)
	})

	t.Run("update unknown id", func(t *testing.T) {
		r := newRepo(t)

		err := r.Update(context.Background(), 42, "Ghost", 1)
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	})

	t.Run("remove excludes the product", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		rice, err := r.Create(ctx, "Rice", 10)
		require.NoError(t, err)
		beans, err := r.Create(ctx, "Beans", 3)
		require.NoError(t, err)

		require.NoError(t, r.Remove(ctx, rice.ID))

		all, err := r.Read(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []models.Product{beans}, all)

		err = r.Remove(ctx, rice.ID)
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	})

	t.Run("ids are not reused", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		first, err := r.Create(ctx, "Rice", 10)
		require.NoError(t, err)
		require.NoError(t, r.Remove(ctx, first.ID))

		second, err := r.Create(ctx, "Rice", 10)
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("read filters by name", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Rice", "Brown rice", "Beans", "50% off", "snake_case", "Açaí"} {
			_, err := r.Create(ctx, name, 1)
			require.NoError(t, err)
		}

		tests := []struct {
			filter string
			want   []string
		}{
			{filter: "", want: []string{"Rice", "Brown rice", "Beans", "50% off", "snake_case", "Açaí"}},
			{filter: "rice", want: []string{"Rice", "Brown rice"}},
			{filter: "RICE", want: []string{"Rice", "Brown rice"}},
			{filter: "bea", want: []string{"Beans"}},
			{filter: "%", want: []string{"50% off"}},
			{filter: "_", want: []string{"snake_case"}},
			{filter: "AÇAÍ", want: []string{"Açaí"}},
			{filter: "çaí", want: []string{"Açaí"}},
			{filter: "pasta", want: []string{}},
		}

		for _, tt := range tests {
			t.Run("filter "+tt.filter, func(t *testing.T) {
				got, err := r.Read(ctx, tt.filter)
				require.NoError(t, err)

				names := []string{}
				for _, p := range got {
					names = append(names, p.Name)
				}
				assert.Equal(t, tt.want, names)
			})
		}
	})
}

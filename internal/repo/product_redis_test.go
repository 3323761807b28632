package repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-form/internal/redissvc"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
	"github.com/stretchr/testify/require"
)

func TestRedisProductRepository(t *testing.T) {
	addr := os.Getenv("INVENTORY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("INVENTORY_TEST_REDIS_ADDR not set")
	}

	rdb, err := redissvc.Connect(context.Background(), redissvc.Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	testProductRepository(t, func(t *testing.T) repo.ProductRepository {
		prefix := fmt.Sprintf("inventory-test:%d", time.Now().UnixNano())
		t.Cleanup(func() {
			ctx := context.Background()
			keys, _ := rdb.Keys(ctx, prefix+":*").Result()
			if len(keys) > 0 {
				rdb.Del(ctx, keys...)
			}
		})
		return repo.NewRedisProductRepository(rdb, prefix, 0)
	})
}

package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// RedisProductRepository keeps each product in a hash and tracks ids in a
// sorted set scored by id, so reads come back in id order.
//
//	<prefix>:next_id        counter used to allocate ids
//	<prefix>:ids            sorted set of live ids
//	<prefix>:product:<id>   hash with name and quantity
type RedisProductRepository struct {
	rdb     *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisProductRepository(rdb *redis.Client, prefix string, timeout time.Duration) *RedisProductRepository {
	if prefix == "" {
		prefix = "inventory"
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RedisProductRepository{rdb: rdb, prefix: prefix, timeout: timeout}
}

func (r *RedisProductRepository) idsKey() string {
	return r.prefix + ":ids"
}

func (r *RedisProductRepository) productKey(id int) string {
	return fmt.Sprintf("%s:product:%d", r.prefix, id)
}

func (r *RedisProductRepository) Create(ctx context.Context, name string, quantity int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	next, err := r.rdb.Incr(ctx, r.prefix+":next_id").Result()
	if err != nil {
		return models.Product{}, storageErr("create", err)
	}
	p := models.Product{ID: int(next), Name: name, Quantity: quantity}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.productKey(p.ID), "name", p.Name, "quantity", p.Quantity)
		pipe.ZAdd(ctx, r.idsKey(), redis.Z{Score: float64(p.ID), Member: strconv.Itoa(p.ID)})
		return nil
	})
	if err != nil {
		return models.Product{}, storageErr("create", err)
	}
	return p, nil
}

func (r *RedisProductRepository) Read(ctx context.Context, filter string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ids, err := r.rdb.ZRange(ctx, r.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, storageErr("read", err)
	}
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, raw := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.prefix+":product:"+raw)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("read", err)
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// id indexed without a record; skip it
			continue
		}
		p, err := decodeProduct(ids[i], fields)
		if err != nil {
			return nil, storageErr("read", err)
		}
		if matchesFilter(p.Name, filter) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *RedisProductRepository) Update(ctx context.Context, id int, name string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	key := r.productKey(id)
	n, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		return storageErr("update", err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	if err := r.rdb.HSet(ctx, key, "name", name, "quantity", quantity).Err(); err != nil {
		return storageErr("update", err)
	}
	return nil
}

func (r *RedisProductRepository) Remove(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.productKey(id))
		pipe.ZRem(ctx, r.idsKey(), strconv.Itoa(id))
		return nil
	})
	if err != nil {
		return storageErr("remove", err)
	}
	if del.Val() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func decodeProduct(rawID string, fields map[string]string) (models.Product, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid product id %q: %w", rawID, err)
	}
	quantity, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity for product %d: %w", id, err)
	}
	return models.Product{ID: id, Name: fields["name"], Quantity: quantity}, nil
}

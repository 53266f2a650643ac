// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// CachingTodoRepository decorates a TodoRepository with Redis caching of
// per-owner todo lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingTodoRepository struct {
	inner     usecase.TodoRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingTodoRepository decorates a TodoRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "todos".
func NewCachingTodoRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TodoRepository, namespace string) *CachingTodoRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "todos"
	}
	return &CachingTodoRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a todo and invalidates the owner's cached list.
func (c *CachingTodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.cacheKey(t.Email)).Err() // Best effort: don't fail if cache deletion fails
	return nil
}

// ListByEmail retrieves todos, checking cache first then falling back to the database.
func (c *CachingTodoRepository) ListByEmail(ctx context.Context, email string) ([]entity.Todo, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByEmail(ctx, email)
	}

	key := c.cacheKey(email)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Todo
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID reads through to the underlying repository.
// 単一レコードの取得は常に更新処理の前段なのでキャッシュしない。
func (c *CachingTodoRepository) FindByID(ctx context.Context, id uint) (*entity.Todo, error) {
	return c.inner.FindByID(ctx, id)
}

// Save persists a todo and invalidates cached lists.
// IDのみで更新されるためオーナーが不明な場合に備え、名前空間全体を無効化する。
func (c *CachingTodoRepository) Save(ctx context.Context, t *entity.Todo) error {
	if err := c.inner.Save(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.Email)
	return nil
}

// Delete removes a todo and invalidates all cached lists in the namespace.
func (c *CachingTodoRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort
	return nil
}

// invalidate removes the owner's cached list, falling back to a namespace
// sweep when the owner is unknown.
func (c *CachingTodoRepository) invalidate(ctx context.Context, email string) {
	if c.rdb == nil {
		return
	}
	if email != "" {
		_ = c.rdb.Del(ctx, c.cacheKey(email)).Err()
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates the cache key for an owner's todo list.
func (c *CachingTodoRepository) cacheKey(email string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(email))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTodoRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

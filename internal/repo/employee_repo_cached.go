package repo

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"employee-api/internal/core/cache"
	"employee-api/internal/domain"
)

// CachedRepo 给 Lookup 加 redis 读穿缓存，写操作后失效对应 key
type CachedRepo struct {
	domain.EmployeeStore
	c   *cache.Cache
	ttl time.Duration
	log *zap.Logger
}

func NewCachedRepo(inner domain.EmployeeStore, c *cache.Cache, ttl time.Duration, l *zap.Logger) *CachedRepo {
	return &CachedRepo{EmployeeStore: inner, c: c, ttl: ttl, log: l}
}

func employeeKey(id int64) string { return "employee:" + strconv.FormatInt(id, 10) }

func (r *CachedRepo) Lookup(ctx context.Context, id int64) (*domain.Employee, error) {
	return cache.GetOrLoadJSON(r.c, ctx, employeeKey(id), r.ttl, func(ctx context.Context) (*domain.Employee, error) {
		return r.EmployeeStore.Lookup(ctx, id)
	})
}

func (r *CachedRepo) Insert(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	out, err := r.EmployeeStore.Insert(ctx, e)
	if err == nil {
		// 之前可能缓存过该 id 的负结果
		r.invalidate(ctx, out.ID)
	}
	return out, err
}

func (r *CachedRepo) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	out, err := r.EmployeeStore.Save(ctx, e)
	r.invalidate(ctx, e.ID)
	return out, err
}

func (r *CachedRepo) Remove(ctx context.Context, id int64) error {
	err := r.EmployeeStore.Remove(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *CachedRepo) invalidate(ctx context.Context, id int64) {
	if err := r.c.Del(ctx, employeeKey(id)); err != nil {
		r.log.Warn("cache invalidate failed", zap.Int64("id", id), zap.Error(err))
	}
}

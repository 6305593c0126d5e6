package repo

import (
	"context"
	"sort"
	"sync"

	"employee-api/internal/domain"
)

// MemoryRepo 进程内存储：写入串行化，唯一性检查与写入在同一把锁内完成；id 单调递增、不复用
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Employee
	emails map[string]int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		rows:   make(map[int64]domain.Employee),
		emails: make(map[string]int64),
	}
}

var _ domain.EmployeeStore = (*MemoryRepo)(nil)

func (r *MemoryRepo) Insert(_ context.Context, e domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.emails[e.Email]; taken {
		return domain.Employee{}, domain.ErrStorageConflict
	}
	e.ID = r.nextID
	r.nextID++
	e = clone(e)
	r.rows[e.ID] = e
	r.emails[e.Email] = e.ID
	return clone(e), nil
}

func (r *MemoryRepo) Lookup(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	e = clone(e)
	return &e, nil
}

func (r *MemoryRepo) Scan(_ context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	r.mu.RLock()
	out := make([]domain.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		if f.Match(e) {
			out = append(out, clone(e))
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Save(_ context.Context, e domain.Employee) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[e.ID]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	if owner, taken := r.emails[e.Email]; taken && owner != e.ID {
		return domain.Employee{}, domain.ErrStorageConflict
	}
	// 不可变字段以存储为准
	e.DateJoined = cur.DateJoined
	e = clone(e)
	delete(r.emails, cur.Email)
	r.emails[e.Email] = e.ID
	r.rows[e.ID] = e
	return clone(e), nil
}

func (r *MemoryRepo) Remove(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.rows, id)
	delete(r.emails, cur.Email)
	return nil
}

func (r *MemoryRepo) FindByEmail(_ context.Context, email string, excludingID int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.emails[email]
	if !ok || (excludingID != 0 && id == excludingID) {
		return nil, nil
	}
	e := clone(r.rows[id])
	return &e, nil
}

// clone 断开指针字段的共享
func clone(e domain.Employee) domain.Employee {
	if e.Department != nil {
		d := *e.Department
		e.Department = &d
	}
	if e.Role != nil {
		ro := *e.Role
		e.Role = &ro
	}
	return e
}

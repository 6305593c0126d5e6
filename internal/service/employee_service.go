package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"employee-api/internal/domain"
	"employee-api/internal/query"
	"employee-api/internal/validation"
)

// EmployeeService 五个资源操作；调用前已由 HTTP 层完成鉴权
type EmployeeService struct {
	store domain.EmployeeStore
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*EmployeeService)

// WithClock 注入时钟（date_joined 取当天日期）
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeService) { s.now = now }
}

func NewEmployeeService(store domain.EmployeeStore, l *zap.Logger, opts ...Option) *EmployeeService {
	if l == nil {
		l = zap.NewNop()
	}
	s := &EmployeeService{store: store, log: l, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *EmployeeService) Create(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error) {
	in, err := validation.ValidateCreate(in)
	if err != nil {
		return domain.Employee{}, err
	}
	if err := validation.CheckEmailUnique(ctx, s.store, in.Email, 0); err != nil {
		return domain.Employee{}, err
	}
	e, err := s.store.Insert(ctx, domain.Employee{
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Role:       in.Role,
		DateJoined: domain.Today(s.now()),
	})
	if err != nil {
		// 检查与写入之间被并发抢先，存储层唯一约束兜底
		if errors.Is(err, domain.ErrStorageConflict) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, err
	}
	s.log.Info("employee created", zap.Int64("id", e.ID))
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := s.store.Lookup(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	if e == nil {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return *e, nil
}

func (s *EmployeeService) List(ctx context.Context, f domain.EmployeeFilter, page int) (query.Page, error) {
	rows, err := s.store.Scan(ctx, f)
	if err != nil {
		return query.Page{}, err
	}
	return query.Paginate(rows, f, page), nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, p domain.EmployeePatch) (domain.Employee, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	p, err = validation.ValidateUpdate(p)
	if err != nil {
		return domain.Employee{}, err
	}
	if p.Email != nil {
		if err := validation.CheckEmailUnique(ctx, s.store, *p.Email, id); err != nil {
			return domain.Employee{}, err
		}
	}
	merged := p.Apply(cur)
	out, err := s.store.Save(ctx, merged)
	if err != nil {
		if errors.Is(err, domain.ErrStorageConflict) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, err
	}
	s.log.Info("employee updated", zap.Int64("id", id))
	return out, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.log.Info("employee deleted", zap.Int64("id", id))
	return nil
}

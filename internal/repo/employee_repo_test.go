package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"employee-api/internal/core/database"
	"employee-api/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var joined = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

func newGormRepo(t *testing.T) *EmployeeRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	r := NewEmployeeRepo(db)
	if err := r.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return r
}

// 两种存储共用同一套行为用例
func stores(t *testing.T) map[string]func(*testing.T) domain.EmployeeStore {
	return map[string]func(*testing.T) domain.EmployeeStore{
		"memory": func(*testing.T) domain.EmployeeStore { return NewMemoryRepo() },
		"gorm":   func(t *testing.T) domain.EmployeeStore { return newGormRepo(t) },
	}
}

func insert(t *testing.T, s domain.EmployeeStore, email string, dept *domain.Department, role *domain.Role) domain.Employee {
	t.Helper()
	e, err := s.Insert(context.Background(), domain.Employee{
		Name: "N " + email, Email: email, Department: dept, Role: role, DateJoined: joined,
	})
	if err != nil {
		t.Fatalf("insert %s: %v", email, err)
	}
	return e
}

func TestStore_InsertAndLookup(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			a := insert(t, s, "a@x.com", ptr(domain.DepartmentHR), nil)
			b := insert(t, s, "b@x.com", nil, ptr(domain.RoleAnalyst))
			if a.ID < 1 || b.ID <= a.ID {
				t.Fatalf("ids must be positive and increasing: %d, %d", a.ID, b.ID)
			}

			got, err := s.Lookup(ctx, a.ID)
			if err != nil || got == nil {
				t.Fatalf("lookup: %v %v", got, err)
			}
			if got.Email != "a@x.com" || got.Department == nil || *got.Department != domain.DepartmentHR || got.Role != nil {
				t.Fatalf("unexpected record: %+v", got)
			}
			if got.DateJoined.Format("2006-01-02") != "2026-01-02" {
				t.Fatalf("unexpected date_joined: %v", got.DateJoined)
			}

			missing, err := s.Lookup(ctx, 999)
			if err != nil || missing != nil {
				t.Fatalf("expected (nil, nil) for missing id, got %v %v", missing, err)
			}
		})
	}
}

func TestStore_InsertConflict(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			insert(t, s, "dup@x.com", nil, nil)
			_, err := s.Insert(context.Background(), domain.Employee{Name: "Other", Email: "dup@x.com", DateJoined: joined})
			if !errors.Is(err, domain.ErrStorageConflict) {
				t.Fatalf("expected ErrStorageConflict, got %v", err)
			}
		})
	}
}

func TestStore_ScanFilterAndOrder(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			insert(t, s, "1@x.com", ptr(domain.DepartmentHR), ptr(domain.RoleManager))
			insert(t, s, "2@x.com", ptr(domain.DepartmentSales), ptr(domain.RoleManager))
			insert(t, s, "3@x.com", ptr(domain.DepartmentHR), ptr(domain.RoleAnalyst))
			insert(t, s, "4@x.com", nil, nil)

			ctx := context.Background()
			all, err := s.Scan(ctx, domain.EmployeeFilter{})
			if err != nil || len(all) != 4 {
				t.Fatalf("scan all: %d %v", len(all), err)
			}
			for i := 1; i < len(all); i++ {
				if all[i-1].ID >= all[i].ID {
					t.Fatalf("scan must be ordered by id")
				}
			}
			hr, _ := s.Scan(ctx, domain.EmployeeFilter{Department: "HR"})
			if len(hr) != 2 {
				t.Fatalf("expected 2 HR, got %d", len(hr))
			}
			both, _ := s.Scan(ctx, domain.EmployeeFilter{Department: "HR", Role: "Manager"})
			if len(both) != 1 || both[0].Email != "1@x.com" {
				t.Fatalf("unexpected HR+Manager result: %+v", both)
			}
			none, _ := s.Scan(ctx, domain.EmployeeFilter{Department: "Legal"})
			if len(none) != 0 {
				t.Fatalf("unknown department should match nothing")
			}
		})
	}
}

func TestStore_Save(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			a := insert(t, s, "a@x.com", ptr(domain.DepartmentHR), nil)
			insert(t, s, "b@x.com", nil, nil)

			a.Name = "Renamed"
			a.Role = ptr(domain.RoleManager)
			a.DateJoined = joined.AddDate(1, 0, 0)
			got, err := s.Save(ctx, a)
			if err != nil {
				t.Fatalf("save: %v", err)
			}
			if got.Name != "Renamed" || got.Role == nil || *got.Role != domain.RoleManager {
				t.Fatalf("save did not apply: %+v", got)
			}
			if got.DateJoined.Format("2006-01-02") != "2026-01-02" {
				t.Fatalf("date_joined must stay fixed, got %v", got.DateJoined)
			}

			a.Email = "b@x.com"
			if _, err := s.Save(ctx, a); !errors.Is(err, domain.ErrStorageConflict) {
				t.Fatalf("expected ErrStorageConflict, got %v", err)
			}
			if _, err := s.Save(ctx, domain.Employee{ID: 999, Name: "x", Email: "z@x.com"}); !errors.Is(err, domain.ErrEmployeeNotFound) {
				t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
			}
		})
	}
}

func TestStore_RemoveAndFindByEmail(t *testing.T) {
	for name, mk := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			ctx := context.Background()
			a := insert(t, s, "a@x.com", nil, nil)

			if got, _ := s.FindByEmail(ctx, "a@x.com", 0); got == nil || got.ID != a.ID {
				t.Fatalf("expected to find a@x.com")
			}
			if got, _ := s.FindByEmail(ctx, "a@x.com", a.ID); got != nil {
				t.Fatalf("excluded id should not be reported")
			}

			if err := s.Remove(ctx, a.ID); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if err := s.Remove(ctx, a.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
				t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
			}
			if got, _ := s.FindByEmail(ctx, "a@x.com", 0); got != nil {
				t.Fatalf("removed email should be free")
			}
			b := insert(t, s, "a@x.com", nil, nil)
			if b.ID <= a.ID {
				t.Fatalf("id reused after delete: %d <= %d", b.ID, a.ID)
			}
		})
	}
}

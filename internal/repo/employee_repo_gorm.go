package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"employee-api/internal/domain"
)

type EmployeeRepo struct{ db *gorm.DB }

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

var _ domain.EmployeeStore = (*EmployeeRepo)(nil)

// AutoMigrate 建表（启动时调用）
func (r *EmployeeRepo) AutoMigrate() error { return r.db.AutoMigrate(&EmployeeModel{}) }

func (r *EmployeeRepo) Insert(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	m := toModel(e)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return domain.Employee{}, domain.ErrStorageConflict
		}
		return domain.Employee{}, err
	}
	return m.toDomain(), nil
}

func (r *EmployeeRepo) Lookup(ctx context.Context, id int64) (*domain.Employee, error) {
	var m EmployeeModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e := m.toDomain()
	return &e, nil
}

// Scan 筛选条件直接下推到 SQL，按 id 升序
func (r *EmployeeRepo) Scan(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	q := r.db.WithContext(ctx).Model(&EmployeeModel{})
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	var ms []EmployeeModel
	if err := q.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// Save 只写可变列（name/email/department/role）
func (r *EmployeeRepo) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	var saved EmployeeModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&saved, "id = ?", e.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEmployeeNotFound
			}
			return err
		}
		m := toModel(e)
		if err := tx.Model(&saved).
			Select("name", "email", "department", "role").
			Updates(&m).Error; err != nil {
			return err
		}
		return tx.First(&saved, "id = ?", e.ID).Error
	})
	if err != nil {
		if isDupKey(err) {
			return domain.Employee{}, domain.ErrStorageConflict
		}
		return domain.Employee{}, err
	}
	return saved.toDomain(), nil
}

func (r *EmployeeRepo) Remove(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&EmployeeModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepo) FindByEmail(ctx context.Context, email string, excludingID int64) (*domain.Employee, error) {
	q := r.db.WithContext(ctx).Where("email = ?", email)
	if excludingID != 0 {
		q = q.Where("id <> ?", excludingID)
	}
	var m EmployeeModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e := m.toDomain()
	return &e, nil
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	// sqlite 等驱动兜底
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint")
}

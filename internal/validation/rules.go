// Package validation 写入前的字段校验与邮箱唯一性检查。
package validation

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"employee-api/internal/domain"
)

const nameMaxLen = 255

var (
	departments = []string{string(domain.DepartmentHR), string(domain.DepartmentEngineering), string(domain.DepartmentSales)}
	roles       = []string{string(domain.RoleManager), string(domain.RoleDeveloper), string(domain.RoleAnalyst)}

	// validator.Validate 并发安全，全包共用
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// ValidateCreate 校验并规范化创建入参（name 去首尾空白）
func ValidateCreate(in domain.EmployeeInput) (domain.EmployeeInput, error) {
	name, err := checkName(in.Name)
	if err != nil {
		return in, err
	}
	if err := checkEmail(in.Email); err != nil {
		return in, err
	}
	if err := checkDepartment(in.Department); err != nil {
		return in, err
	}
	if err := checkRole(in.Role); err != nil {
		return in, err
	}
	in.Name = name
	return in, nil
}

// ValidateUpdate 只校验给出的字段
func ValidateUpdate(p domain.EmployeePatch) (domain.EmployeePatch, error) {
	if p.Name != nil {
		name, err := checkName(*p.Name)
		if err != nil {
			return p, err
		}
		p.Name = &name
	}
	if p.Email != nil {
		if err := checkEmail(*p.Email); err != nil {
			return p, err
		}
	}
	if err := checkDepartment(p.Department); err != nil {
		return p, err
	}
	if err := checkRole(p.Role); err != nil {
		return p, err
	}
	return p, nil
}

// EmailFinder Record Store 中用于唯一性检查的那一部分
type EmailFinder interface {
	FindByEmail(ctx context.Context, email string, excludingID int64) (*domain.Employee, error)
}

// CheckEmailUnique excludingID 为 0 表示不排除（创建时）
func CheckEmailUnique(ctx context.Context, f EmailFinder, email string, excludingID int64) error {
	existing, err := f.FindByEmail(ctx, email, excludingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if validate.Var(name, "required") != nil {
		return "", domain.ErrEmptyName
	}
	if validate.Var(name, "max="+strconv.Itoa(nameMaxLen)) != nil {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}

func checkEmail(email string) error {
	if validate.Var(email, "required,email") != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}

func checkDepartment(d *domain.Department) error {
	if d == nil {
		return nil
	}
	if validate.Var(string(*d), "oneof="+strings.Join(departments, " ")) != nil {
		return &domain.EnumError{Field: "department", Allowed: departments}
	}
	return nil
}

func checkRole(r *domain.Role) error {
	if r == nil {
		return nil
	}
	if validate.Var(string(*r), "oneof="+strings.Join(roles, " ")) != nil {
		return &domain.EnumError{Field: "role", Allowed: roles}
	}
	return nil
}

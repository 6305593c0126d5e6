package domain

import (
	"context"
	"time"
)

type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
)

type Role string

const (
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
	RoleAnalyst   Role = "Analyst"
)

// Employee 员工记录；ID / DateJoined 由存储层在创建时分配，之后不可变
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Department *Department
	Role       *Role
	DateJoined time.Time
}

// EmployeeInput 创建入参
type EmployeeInput struct {
	Name       string
	Email      string
	Department *Department
	Role       *Role
}

// EmployeePatch 更新入参；nil 表示不修改
type EmployeePatch struct {
	Name       *string
	Email      *string
	Department *Department
	Role       *Role
}

// Apply 把 patch 中给出的字段合并到 e 上（ID / DateJoined 不动）
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		d := *p.Department
		e.Department = &d
	}
	if p.Role != nil {
		r := *p.Role
		e.Role = &r
	}
	return e
}

// EmployeeFilter 列表等值筛选；空串表示不筛选。不在枚举内的值不报错，只是匹配不到
type EmployeeFilter struct {
	Department string
	Role       string
}

// Match 判断 e 是否满足筛选条件
func (f EmployeeFilter) Match(e Employee) bool {
	if f.Department != "" && (e.Department == nil || string(*e.Department) != f.Department) {
		return false
	}
	if f.Role != "" && (e.Role == nil || string(*e.Role) != f.Role) {
		return false
	}
	return true
}

// EmployeeStore 存储端口。
// Lookup / FindByEmail 找不到时返回 (nil, nil)；
// Insert / Save 遇到唯一约束冲突返回 ErrStorageConflict；
// Save / Remove 找不到 id 返回 ErrNotFound。
type EmployeeStore interface {
	Insert(ctx context.Context, e Employee) (Employee, error)
	Lookup(ctx context.Context, id int64) (*Employee, error)
	Scan(ctx context.Context, f EmployeeFilter) ([]Employee, error)
	Save(ctx context.Context, e Employee) (Employee, error)
	Remove(ctx context.Context, id int64) error
	// excludingID 为 0 时不排除任何记录
	FindByEmail(ctx context.Context, email string, excludingID int64) (*Employee, error)
}

// Today 截断到当天零点（保留时区）
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

package handler

import (
	"employee-api/internal/domain"
	"employee-api/internal/query"
)

const dateLayout = "2006-01-02"

type loginIn struct {
	// 指针 + required：缺字段 400，空串交给凭据比对 401
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type employeeIn struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Department *domain.Department `json:"department"`
	Role       *domain.Role       `json:"role"`
}

func (in employeeIn) toInput() domain.EmployeeInput {
	return domain.EmployeeInput{Name: in.Name, Email: in.Email, Department: in.Department, Role: in.Role}
}

// employeePatchIn 未给出（或为 null）的字段不修改
type employeePatchIn struct {
	Name       *string            `json:"name"`
	Email      *string            `json:"email"`
	Department *domain.Department `json:"department"`
	Role       *domain.Role       `json:"role"`
}

func (in employeePatchIn) toPatch() domain.EmployeePatch {
	return domain.EmployeePatch{Name: in.Name, Email: in.Email, Department: in.Department, Role: in.Role}
}

type listQ struct {
	Department string `form:"department"`
	Role       string `form:"role"`
	Page       string `form:"page"`
}

type employeeOut struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Department *domain.Department `json:"department"`
	Role       *domain.Role       `json:"role"`
	DateJoined string             `json:"date_joined"`
}

func toOut(e domain.Employee) employeeOut {
	return employeeOut{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		DateJoined: e.DateJoined.Format(dateLayout),
	}
}

type pageOut struct {
	Items      []employeeOut `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

func toPageOut(p query.Page) pageOut {
	out := pageOut{
		Items:      make([]employeeOut, 0, len(p.Items)),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
	for _, e := range p.Items {
		out.Items = append(out.Items, toOut(e))
	}
	return out
}

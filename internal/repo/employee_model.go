package repo

import (
	"time"

	"employee-api/internal/domain"
)

// EmployeeModel employees 表；email 唯一索引是唯一性的最终防线
type EmployeeModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"size:255;not null;index"`
	Email      string    `gorm:"uniqueIndex;size:255;not null"`
	Department *string   `gorm:"size:32;index"`
	Role       *string   `gorm:"size:32;index"`
	DateJoined time.Time `gorm:"type:date;not null"`
}

func (EmployeeModel) TableName() string { return "employees" }

func toModel(e domain.Employee) EmployeeModel {
	m := EmployeeModel{ID: e.ID, Name: e.Name, Email: e.Email, DateJoined: e.DateJoined}
	if e.Department != nil {
		d := string(*e.Department)
		m.Department = &d
	}
	if e.Role != nil {
		r := string(*e.Role)
		m.Role = &r
	}
	return m
}

func (m EmployeeModel) toDomain() domain.Employee {
	e := domain.Employee{ID: m.ID, Name: m.Name, Email: m.Email, DateJoined: domain.Today(m.DateJoined)}
	if m.Department != nil {
		d := domain.Department(*m.Department)
		e.Department = &d
	}
	if m.Role != nil {
		r := domain.Role(*m.Role)
		e.Role = &r
	}
	return e
}

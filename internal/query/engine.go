// Package query 列表查询：等值筛选 + 确定性分页。
package query

import (
	"sort"

	"employee-api/internal/domain"
)

const PageSize = 10

type Page struct {
	Items      []domain.Employee
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate 对候选集（可能已在存储层筛过）再做一次筛选，按 id 升序稳定排序后切页。
// page < 1 按 1 处理；超出末页返回空 Items，元数据不变。
func Paginate(records []domain.Employee, f domain.EmployeeFilter, page int) Page {
	if page < 1 {
		page = 1
	}

	matched := make([]domain.Employee, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	out := Page{
		Items:      []domain.Employee{},
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: TotalPages(total),
	}

	if total == 0 || page > out.TotalPages {
		return out
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, total)
	out.Items = matched[start:end]
	return out
}

// TotalPages ceil(total/PageSize)，至少为 1
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

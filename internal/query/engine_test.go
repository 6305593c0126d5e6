package query

import (
	"math"
	"testing"

	"employee-api/internal/domain"
)

func seed(n int) []domain.Employee {
	out := make([]domain.Employee, 0, n)
	for i := n; i >= 1; i-- { // 故意倒序，验证排序
		e := domain.Employee{ID: int64(i)}
		var d domain.Department
		switch i % 3 {
		case 0:
			d = domain.DepartmentHR
		case 1:
			d = domain.DepartmentEngineering
		default:
			d = domain.DepartmentSales
		}
		e.Department = &d
		if i%2 == 0 {
			r := domain.RoleManager
			e.Role = &r
		}
		out = append(out, e)
	}
	return out
}

func TestPaginate_FirstAndLastPage(t *testing.T) {
	recs := seed(15)

	p1 := Paginate(recs, domain.EmployeeFilter{}, 1)
	if len(p1.Items) != 10 || p1.Total != 15 || p1.TotalPages != 2 || p1.PageSize != 10 || p1.Page != 1 {
		t.Fatalf("unexpected page 1: %+v", p1)
	}
	for i, e := range p1.Items {
		if e.ID != int64(i+1) {
			t.Fatalf("expected ascending ids, got %d at %d", e.ID, i)
		}
	}

	p2 := Paginate(recs, domain.EmployeeFilter{}, 2)
	if len(p2.Items) != 5 || p2.Items[0].ID != 11 || p2.Items[4].ID != 15 {
		t.Fatalf("unexpected page 2: %+v", p2)
	}
}

func TestPaginate_BeyondLastPage(t *testing.T) {
	recs := seed(15)
	for _, page := range []int{3, 100, math.MaxInt} {
		p := Paginate(recs, domain.EmployeeFilter{}, page)
		if len(p.Items) != 0 || p.Total != 15 || p.TotalPages != 2 || p.Page != page {
			t.Fatalf("page %d: unexpected result %+v", page, p)
		}
		if p.Items == nil {
			t.Fatalf("page %d: items must be an empty slice, not nil", page)
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, domain.EmployeeFilter{}, 1)
	if p.Total != 0 || p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}

func TestPaginate_PageBelowOne(t *testing.T) {
	p := Paginate(seed(3), domain.EmployeeFilter{}, 0)
	if p.Page != 1 || len(p.Items) != 3 {
		t.Fatalf("expected page 0 to behave as page 1: %+v", p)
	}
}

func TestPaginate_Filters(t *testing.T) {
	recs := seed(15)

	hr := Paginate(recs, domain.EmployeeFilter{Department: "HR"}, 1)
	if hr.Total != 5 {
		t.Fatalf("expected 5 HR records, got %d", hr.Total)
	}
	for _, e := range hr.Items {
		if *e.Department != domain.DepartmentHR {
			t.Fatalf("unexpected department %v", *e.Department)
		}
	}

	both := Paginate(recs, domain.EmployeeFilter{Department: "HR", Role: "Manager"}, 1)
	// i%3==0 && i%2==0 → 6, 12
	if both.Total != 2 || both.Items[0].ID != 6 || both.Items[1].ID != 12 {
		t.Fatalf("unexpected combined filter result: %+v", both)
	}

	unknown := Paginate(recs, domain.EmployeeFilter{Department: "Legal"}, 1)
	if unknown.Total != 0 || len(unknown.Items) != 0 || unknown.TotalPages != 1 {
		t.Fatalf("unknown filter value should match nothing: %+v", unknown)
	}
}

func TestTotalPages(t *testing.T) {
	for total, want := range map[int]int{0: 1, 1: 1, 10: 1, 11: 2, 20: 2, 21: 3} {
		if got := TotalPages(total); got != want {
			t.Errorf("TotalPages(%d) = %d, want %d", total, got, want)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-api/internal/domain"
	"employee-api/internal/service"
	httpez "employee-api/internal/transport/http/ez"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Mount 挂到已鉴权分组上（/employees/ 与 /employees/:id/）
func (h *EmployeeHandler) Mount(g gin.IRoutes) {
	httpez.Register(g, httpez.Action[employeeIn, employeeOut]{
		Method: http.MethodPost,
		Path:   "/employees/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *employeeIn) (employeeOut, error) {
			e, err := h.svc.Create(c.Request.Context(), in.toInput())
			if err != nil {
				return employeeOut{}, err
			}
			return toOut(e), nil
		},
	})

	httpez.Register(g, httpez.Action[listQ, pageOut]{
		Method: http.MethodGet,
		Path:   "/employees/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (pageOut, error) {
			f := domain.EmployeeFilter{Department: in.Department, Role: in.Role}
			p, err := h.svc.List(c.Request.Context(), f, httpez.AtoiDefault(in.Page, 1))
			if err != nil {
				return pageOut{}, err
			}
			return toPageOut(p), nil
		},
	})

	httpez.Register(g, httpez.Action[struct{}, employeeOut]{
		Method: http.MethodGet,
		Path:   "/employees/:id/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (employeeOut, error) {
			id, err := httpez.ParamID(c, domain.ErrEmployeeNotFound)
			if err != nil {
				return employeeOut{}, err
			}
			e, err := h.svc.Get(c.Request.Context(), id)
			if err != nil {
				return employeeOut{}, err
			}
			return toOut(e), nil
		},
	})

	httpez.Register(g, httpez.Action[employeePatchIn, employeeOut]{
		Method: http.MethodPut,
		Path:   "/employees/:id/",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *employeePatchIn) (employeeOut, error) {
			id, err := httpez.ParamID(c, domain.ErrEmployeeNotFound)
			if err != nil {
				return employeeOut{}, err
			}
			e, err := h.svc.Update(c.Request.Context(), id, in.toPatch())
			if err != nil {
				return employeeOut{}, err
			}
			return toOut(e), nil
		},
	})

	httpez.Register(g, httpez.Action[struct{}, struct{}]{
		Method: http.MethodDelete,
		Path:   "/employees/:id/",
		Binder: httpez.BindNone,
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := httpez.ParamID(c, domain.ErrEmployeeNotFound)
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), id)
		},
	})
}

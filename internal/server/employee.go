package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	employeedomain "github.com/smallbiznis/panorama/internal/employee/domain"
)

type employeeRequest struct {
	Name      string  `json:"name"`
	Position  *string `json:"position"`
	WorkingOn *string `json:"working_on"`
	EmpCode   *string `json:"emp_code"`
}

func (r employeeRequest) input() employeedomain.EmployeeInput {
	return employeedomain.EmployeeInput{
		Name:      r.Name,
		Position:  r.Position,
		WorkingOn: r.WorkingOn,
		EmpCode:   r.EmpCode,
	}
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	employee, err := s.employeeSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

func (s *Server) ListEmployees(c *gin.Context) {
	employees, err := s.employeeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (s *Server) GetEmployeeByID(c *gin.Context) {
	id, err := parseID(c, employeedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	employee, err := s.employeeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c, employeedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req employeeRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	employee, err := s.employeeSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee updated successfully",
		"employee": employee,
	})
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	id, err := parseID(c, employeedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

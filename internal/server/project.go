package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	projectdomain "github.com/smallbiznis/panorama/internal/project/domain"
)

type projectRequest struct {
	Name          string   `json:"name"`
	ClientID      int64    `json:"client_id"`
	EmpID         int64    `json:"emp_id"`
	BillingAmt    *float64 `json:"billing_amt"`
	Active        *bool    `json:"active"`
	BillingMethod *string  `json:"billing_method"`
	OvertimeAmt   *float64 `json:"overtime_amt"`
}

func (r projectRequest) input() projectdomain.ProjectInput {
	return projectdomain.ProjectInput{
		Name:          r.Name,
		ClientID:      r.ClientID,
		EmpID:         r.EmpID,
		BillingAmt:    r.BillingAmt,
		Active:        r.Active,
		BillingMethod: r.BillingMethod,
		OvertimeAmt:   r.OvertimeAmt,
	}
}

func (s *Server) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	project, err := s.projectSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.projectSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if len(projects) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":  "No projects found in the database.",
			"projects": projects,
		})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) GetProjectByID(c *gin.Context) {
	id, err := parseID(c, projectdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	project, err := s.projectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) UpdateProject(c *gin.Context) {
	id, err := parseID(c, projectdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req projectRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	project, err := s.projectSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

func (s *Server) DeleteProject(c *gin.Context) {
	id, err := parseID(c, projectdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.projectSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/panorama/internal/client/domain"
)

type clientRequest struct {
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	State     *string `json:"state"`
	GSTNumber *string `json:"gst_number"`
	CompanyID int64   `json:"company_id"`
}

func (r clientRequest) input() clientdomain.ClientInput {
	return clientdomain.ClientInput{
		Name:      r.Name,
		Address:   r.Address,
		State:     r.State,
		GSTNumber: r.GSTNumber,
		CompanyID: r.CompanyID,
	}
}

func (s *Server) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	client, err := s.clientSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

func (s *Server) ListClients(c *gin.Context) {
	clients, err := s.clientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (s *Server) GetClientByID(c *gin.Context) {
	id, err := parseID(c, clientdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	client, err := s.clientSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) UpdateClient(c *gin.Context) {
	id, err := parseID(c, clientdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req clientRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	client, err := s.clientSvc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

func (s *Server) DeleteClient(c *gin.Context) {
	id, err := parseID(c, clientdomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.clientSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/panorama/internal/auth/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) RegisterAdmin(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	admin, err := s.authSvc.Register(c.Request.Context(), authdomain.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s admin created successfully", admin.Email),
		"admin":   admin.View(),
	})
}

func (s *Server) Login(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		// a body that does not even decode is a malformed login
		AbortWithError(c, authdomain.ErrInvalidLogin)
		return
	}

	res, err := s.authSvc.Authenticate(c.Request.Context(), authdomain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %s logged in successfully", res.Admin.Email),
		"token":   res.Token,
	})
}

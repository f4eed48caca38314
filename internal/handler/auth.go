package handler

import (
	"errors"
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.UsuarioService }

func NewAuthHandler(svc service.UsuarioService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciales) {
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

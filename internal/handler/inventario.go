package handler

import (
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/middleware"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct {
	svc         service.InventarioService
	materialSvc service.MaterialService
}

func NewInventarioHandler(svc service.InventarioService, materialSvc service.MaterialService) *InventarioHandler {
	return &InventarioHandler{svc: svc, materialSvc: materialSvc}
}

// RegistrarMovimiento POST /v1/inventario/movimientos
// El usuario que registra sale del JWT, nunca del body.
func (h *InventarioHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UsuarioID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido"))
		return
	}

	resp, svcErr := h.svc.RegistrarMovimiento(c.Request.Context(), usuarioID, req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerMovimiento GET /v1/inventario/movimientos/:id
func (h *InventarioHandler) ObtenerMovimiento(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimientos GET /v1/inventario/movimientos
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas GET /v1/inventario/alertas
func (h *InventarioHandler) Alertas(c *gin.Context) {
	resp, err := h.materialSvc.AlertasStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

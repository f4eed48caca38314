package handler

import (
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type FormulasHandler struct{ svc service.FormulaService }

func NewFormulasHandler(svc service.FormulaService) *FormulasHandler {
	return &FormulasHandler{svc: svc}
}

// Crear POST /v1/formulas
func (h *FormulasHandler) Crear(c *gin.Context) {
	var req dto.CrearFormulaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarPorTipoProducto GET /v1/tipos-producto/:id/formulas
func (h *FormulasHandler) ListarPorTipoProducto(c *gin.Context) {
	tipoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var filter dto.ListFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarPorTipoProducto(c.Request.Context(), tipoID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/formulas/:id
func (h *FormulasHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

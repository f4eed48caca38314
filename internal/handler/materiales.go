package handler

import (
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type MaterialesHandler struct{ svc service.MaterialService }

func NewMaterialesHandler(svc service.MaterialService) *MaterialesHandler {
	return &MaterialesHandler{svc: svc}
}

// Crear POST /v1/materiales
func (h *MaterialesHandler) Crear(c *gin.Context) {
	var req dto.CrearMaterialRequest
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

// Obtener GET /v1/materiales/:id
func (h *MaterialesHandler) Obtener(c *gin.Context) {
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

// Listar GET /v1/materiales
func (h *MaterialesHandler) Listar(c *gin.Context) {
	var filter dto.MaterialFilter
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

// Actualizar PUT /v1/materiales/:id
func (h *MaterialesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/materiales/:id
func (h *MaterialesHandler) Desactivar(c *gin.Context) {
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

// Reactivar POST /v1/materiales/:id/reactivar
func (h *MaterialesHandler) Reactivar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Stats GET /v1/materiales/stats
func (h *MaterialesHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// CrearTipo POST /v1/tipos-producto
func (h *CatalogoHandler) CrearTipo(c *gin.Context) {
	var req dto.CrearTipoProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerTipo GET /v1/tipos-producto/:id
func (h *CatalogoHandler) ObtenerTipo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerTipo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarTipos GET /v1/tipos-producto
func (h *CatalogoHandler) ListarTipos(c *gin.Context) {
	var filter dto.ListFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarTipos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarTipo PUT /v1/tipos-producto/:id
func (h *CatalogoHandler) ActualizarTipo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarTipoProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarTipo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarTipo DELETE /v1/tipos-producto/:id
func (h *CatalogoHandler) DesactivarTipo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarTipo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ReactivarTipo POST /v1/tipos-producto/:id/reactivar
func (h *CatalogoHandler) ReactivarTipo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReactivarTipo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// CrearModelo POST /v1/tipos-producto/:id/modelos
func (h *CatalogoHandler) CrearModelo(c *gin.Context) {
	tipoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearModeloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearModelo(c.Request.Context(), tipoID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarModelos GET /v1/tipos-producto/:id/modelos
func (h *CatalogoHandler) ListarModelos(c *gin.Context) {
	tipoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var filter dto.ListFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarModelos(c.Request.Context(), tipoID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarModelo DELETE /v1/tipos-producto/:id/modelos/:modeloId
func (h *CatalogoHandler) EliminarModelo(c *gin.Context) {
	tipoID, ok := parseID(c, "id")
	if !ok {
		return
	}
	modeloID, ok := parseID(c, "modeloId")
	if !ok {
		return
	}
	if err := h.svc.EliminarModelo(c.Request.Context(), tipoID, modeloID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

package handler

import (
	"net/http"

	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VariantesHandler struct{ svc service.VarianteService }

func NewVariantesHandler(svc service.VarianteService) *VariantesHandler {
	return &VariantesHandler{svc: svc}
}

// Cada familia comparte la forma del request; los handlers sólo difieren en
// el método de servicio al que delegan.

type varianteOps struct {
	crear      func(c *gin.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error)
	listar     func(c *gin.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error)
	actualizar func(c *gin.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error)
	desactivar func(c *gin.Context, id uuid.UUID) error
}

func (h *VariantesHandler) crear(c *gin.Context, ops varianteOps) {
	var req dto.CrearVarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := ops.crear(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VariantesHandler) listar(c *gin.Context, ops varianteOps) {
	var filter dto.ListFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := ops.listar(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VariantesHandler) actualizar(c *gin.Context, ops varianteOps) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarVarianteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := ops.actualizar(c, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VariantesHandler) desactivar(c *gin.Context, ops varianteOps) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ops.desactivar(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *VariantesHandler) opsColorPVC() varianteOps {
	return varianteOps{
		crear: func(c *gin.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.CrearColorPVC(c.Request.Context(), req)
		},
		listar: func(c *gin.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
			return h.svc.ListarColoresPVC(c.Request.Context(), filter)
		},
		actualizar: func(c *gin.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.ActualizarColorPVC(c.Request.Context(), id, req)
		},
		desactivar: func(c *gin.Context, id uuid.UUID) error {
			return h.svc.DesactivarColorPVC(c.Request.Context(), id)
		},
	}
}

func (h *VariantesHandler) opsColorAluminio() varianteOps {
	return varianteOps{
		crear: func(c *gin.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.CrearColorAluminio(c.Request.Context(), req)
		},
		listar: func(c *gin.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
			return h.svc.ListarColoresAluminio(c.Request.Context(), filter)
		},
		actualizar: func(c *gin.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.ActualizarColorAluminio(c.Request.Context(), id, req)
		},
		desactivar: func(c *gin.Context, id uuid.UUID) error {
			return h.svc.DesactivarColorAluminio(c.Request.Context(), id)
		},
	}
}

func (h *VariantesHandler) opsTipoVidrio() varianteOps {
	return varianteOps{
		crear: func(c *gin.Context, req dto.CrearVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.CrearTipoVidrio(c.Request.Context(), req)
		},
		listar: func(c *gin.Context, filter dto.ListFilter) ([]dto.VarianteResponse, error) {
			return h.svc.ListarTiposVidrio(c.Request.Context(), filter)
		},
		actualizar: func(c *gin.Context, id uuid.UUID, req dto.ActualizarVarianteRequest) (*dto.VarianteResponse, error) {
			return h.svc.ActualizarTipoVidrio(c.Request.Context(), id, req)
		},
		desactivar: func(c *gin.Context, id uuid.UUID) error {
			return h.svc.DesactivarTipoVidrio(c.Request.Context(), id)
		},
	}
}

// CrearColorPVC POST /v1/variantes/colores-pvc
func (h *VariantesHandler) CrearColorPVC(c *gin.Context) { h.crear(c, h.opsColorPVC()) }

// ListarColoresPVC GET /v1/variantes/colores-pvc
func (h *VariantesHandler) ListarColoresPVC(c *gin.Context) { h.listar(c, h.opsColorPVC()) }

// ActualizarColorPVC PUT /v1/variantes/colores-pvc/:id
func (h *VariantesHandler) ActualizarColorPVC(c *gin.Context) { h.actualizar(c, h.opsColorPVC()) }

// DesactivarColorPVC DELETE /v1/variantes/colores-pvc/:id
func (h *VariantesHandler) DesactivarColorPVC(c *gin.Context) { h.desactivar(c, h.opsColorPVC()) }

// CrearColorAluminio POST /v1/variantes/colores-aluminio
func (h *VariantesHandler) CrearColorAluminio(c *gin.Context) { h.crear(c, h.opsColorAluminio()) }

// ListarColoresAluminio GET /v1/variantes/colores-aluminio
func (h *VariantesHandler) ListarColoresAluminio(c *gin.Context) { h.listar(c, h.opsColorAluminio()) }

// ActualizarColorAluminio PUT /v1/variantes/colores-aluminio/:id
func (h *VariantesHandler) ActualizarColorAluminio(c *gin.Context) {
	h.actualizar(c, h.opsColorAluminio())
}

// DesactivarColorAluminio DELETE /v1/variantes/colores-aluminio/:id
func (h *VariantesHandler) DesactivarColorAluminio(c *gin.Context) {
	h.desactivar(c, h.opsColorAluminio())
}

// CrearTipoVidrio POST /v1/variantes/tipos-vidrio
func (h *VariantesHandler) CrearTipoVidrio(c *gin.Context) { h.crear(c, h.opsTipoVidrio()) }

// ListarTiposVidrio GET /v1/variantes/tipos-vidrio
func (h *VariantesHandler) ListarTiposVidrio(c *gin.Context) { h.listar(c, h.opsTipoVidrio()) }

// ActualizarTipoVidrio PUT /v1/variantes/tipos-vidrio/:id
func (h *VariantesHandler) ActualizarTipoVidrio(c *gin.Context) { h.actualizar(c, h.opsTipoVidrio()) }

// DesactivarTipoVidrio DELETE /v1/variantes/tipos-vidrio/:id
func (h *VariantesHandler) DesactivarTipoVidrio(c *gin.Context) { h.desactivar(c, h.opsTipoVidrio()) }

// Tipos GET /v1/variantes/tipos
func (h *VariantesHandler) Tipos(c *gin.Context) {
	resp, err := h.svc.Tipos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearTipoProductoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=120"`
	Descripcion *string `json:"descripcion"`
	Categoria   string  `json:"categoria"   validate:"required"`
}

type ActualizarTipoProductoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=120"`
	Descripcion *string `json:"descripcion"`
	Categoria   *string `json:"categoria"`
}

type CrearModeloRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=1,max=120"`
	Descripcion *string `json:"descripcion"`
	Codigo      *string `json:"codigo"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ListFilter is the shared activo query filter: "" = activos (default),
// "false" = inactivos, "all" = todos.
type ListFilter struct {
	Activo string `form:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TipoProductoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Categoria   string  `json:"categoria"`
	Activo      bool    `json:"activo"`
	CreatedAt   string  `json:"created_at"`
}

type ModeloResponse struct {
	ID             string  `json:"id"`
	TipoProductoID string  `json:"tipo_producto_id"`
	Nombre         string  `json:"nombre"`
	Descripcion    *string `json:"descripcion"`
	Codigo         *string `json:"codigo"`
	Activo         bool    `json:"activo"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ManoObraFabricacion = "fabricacion"
	ManoObraInstalacion = "instalacion"
	ManoObraMalla       = "malla"
)

var TiposManoObra = []string{ManoObraFabricacion, ManoObraInstalacion, ManoObraMalla}

// ConfigMalla holds the extra configuration for mesh-type labor: which
// materials contribute to the mesh and whether labor is bundled in.
type ConfigMalla struct {
	Materiales       []uuid.UUID `json:"materiales"`
	IncluyeManoObra  bool        `json:"incluye_mano_obra"`
}

// ParametroManoObra defines a labor rate. Rates are per square meter and can
// be enabled independently per material family (PVC / aluminio).
type ParametroManoObra struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null"`
	Descripcion    *string
	Tipo           string          `gorm:"type:varchar(20);not null"`
	AplicaPVC      bool            `gorm:"not null;default:false"`
	TarifaPVC      decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	AplicaAluminio bool            `gorm:"not null;default:false"`
	TarifaAluminio decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	ConfigMalla    *ConfigMalla    `gorm:"serializer:json"`
	Activo         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ParametroManoObra) TableName() string { return "parametros_mano_obra" }

// TipoManoObraValido reports whether t is a known labor type.
func TipoManoObraValido(t string) bool {
	for _, v := range TiposManoObra {
		if v == t {
			return true
		}
	}
	return false
}

package service_test

import (
	"context"
	"testing"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearParametro(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())

	tarifa := decimal.RequireFromString("350.00")
	resp, err := svc.Crear(context.Background(), dto.CrearParametroManoObraRequest{
		Nombre:    "Fabricación ventana",
		Tipo:      model.ManoObraFabricacion,
		AplicaPVC: true,
		TarifaPVC: &tarifa,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.True(t, resp.TarifaPVC.Equal(tarifa))
	assert.Nil(t, resp.ConfigMalla)
}

func TestCrearParametroTipoInvalido(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())

	_, err := svc.Crear(context.Background(), dto.CrearParametroManoObraRequest{
		Nombre: "Pulido",
		Tipo:   "pulido",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, apierror.FieldsOf(err), "tipo")
}

func TestCrearParametroTarifaNegativa(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())

	tarifa := decimal.RequireFromString("-10")
	_, err := svc.Crear(context.Background(), dto.CrearParametroManoObraRequest{
		Nombre:         "Instalación",
		Tipo:           model.ManoObraInstalacion,
		TarifaAluminio: &tarifa,
	})
	require.Error(t, err)
	assert.Contains(t, apierror.FieldsOf(err), "tarifa_aluminio")
}

// ConfigMalla sólo tiene sentido en parámetros tipo malla.
func TestCrearParametroConfigMalla(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())
	ctx := context.Background()

	cfg := &dto.ConfigMallaInput{
		Materiales:      []string{uuid.NewString(), uuid.NewString()},
		IncluyeManoObra: true,
	}

	_, err := svc.Crear(ctx, dto.CrearParametroManoObraRequest{
		Nombre:      "Fabricación",
		Tipo:        model.ManoObraFabricacion,
		ConfigMalla: cfg,
	})
	require.Error(t, err)
	assert.Contains(t, apierror.FieldsOf(err), "config_malla")

	resp, err := svc.Crear(ctx, dto.CrearParametroManoObraRequest{
		Nombre:      "Mosquitero estándar",
		Tipo:        model.ManoObraMalla,
		ConfigMalla: cfg,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ConfigMalla)
	assert.Len(t, resp.ConfigMalla.Materiales, 2)
	assert.True(t, resp.ConfigMalla.IncluyeManoObra)

	// Referencias de material mal formadas se rechazan.
	_, err = svc.Crear(ctx, dto.CrearParametroManoObraRequest{
		Nombre:      "Mosquitero",
		Tipo:        model.ManoObraMalla,
		ConfigMalla: &dto.ConfigMallaInput{Materiales: []string{"malla-1"}},
	})
	require.Error(t, err)
	assert.Contains(t, apierror.FieldsOf(err), "config_malla.materiales")
}

// El tipo es inmutable: Actualizar no lo expone y ConfigMalla sigue atada al
// tipo original.
func TestActualizarParametro(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearParametroManoObraRequest{
		Nombre: "Instalación",
		Tipo:   model.ManoObraInstalacion,
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	tarifa := decimal.RequireFromString("420.00")
	aplica := true
	actualizado, err := svc.Actualizar(ctx, id, dto.ActualizarParametroManoObraRequest{
		AplicaAluminio: &aplica,
		TarifaAluminio: &tarifa,
	})
	require.NoError(t, err)
	assert.True(t, actualizado.AplicaAluminio)
	assert.True(t, actualizado.TarifaAluminio.Equal(tarifa))
	assert.Equal(t, model.ManoObraInstalacion, actualizado.Tipo)

	_, err = svc.Actualizar(ctx, id, dto.ActualizarParametroManoObraRequest{
		ConfigMalla: &dto.ConfigMallaInput{},
	})
	require.Error(t, err)
	assert.Contains(t, apierror.FieldsOf(err), "config_malla")
}

func TestDesactivarParametro(t *testing.T) {
	svc := service.NewParametroService(newStubParametroRepo())
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearParametroManoObraRequest{
		Nombre: "Fabricación puerta",
		Tipo:   model.ManoObraFabricacion,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Desactivar(ctx, uuid.MustParse(creado.ID)))

	activos, err := svc.Listar(ctx, dto.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, activos)
}

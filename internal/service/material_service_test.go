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

// El servicio funciona sin Redis: la caché de stats es best-effort.
func nuevoMaterialService() (service.MaterialService, *stubMaterialRepo, *stubProveedorRepo) {
	matRepo := newStubMaterialRepo()
	provRepo := newStubProveedorRepo()
	return service.NewMaterialService(matRepo, provRepo, nil), matRepo, provRepo
}

func TestCrearMaterial(t *testing.T) {
	svc, _, _ := nuevoMaterialService()

	stock := decimal.NewFromInt(40)
	resp, err := svc.Crear(context.Background(), dto.CrearMaterialRequest{
		Nombre: "Perfil marco PVC",
		Costo:  decimal.RequireFromString("120.75"),
		Stock:  &stock,
		EsBase: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Activo)
	assert.True(t, resp.EsBase)
	// Sin unidad explícita aplica metro.
	assert.Equal(t, "metro", resp.Unidad)
	assert.True(t, resp.Stock.Equal(stock))
}

func TestCrearMaterialCostoNegativo(t *testing.T) {
	svc, _, _ := nuevoMaterialService()

	_, err := svc.Crear(context.Background(), dto.CrearMaterialRequest{
		Nombre: "Perfil marco PVC",
		Costo:  decimal.RequireFromString("-1"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, apierror.FieldsOf(err), "costo")
}

func TestCrearMaterialProveedorInactivo(t *testing.T) {
	svc, _, provRepo := nuevoMaterialService()
	ctx := context.Background()

	proveedor := &model.Proveedor{Nombre: "Perfiles del Norte", Activo: false}
	require.NoError(t, provRepo.Create(ctx, proveedor))

	pid := proveedor.ID.String()
	_, err := svc.Crear(ctx, dto.CrearMaterialRequest{
		Nombre:      "Perfil hoja",
		Costo:       decimal.NewFromInt(90),
		ProveedorID: &pid,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

// Actualizar jamás toca el stock: no hay campo para ello en el request y el
// valor persistido se conserva tal cual.
func TestActualizarMaterialNoTocaStock(t *testing.T) {
	svc, matRepo, _ := nuevoMaterialService()
	ctx := context.Background()

	stock := decimal.NewFromInt(33)
	creado, err := svc.Crear(ctx, dto.CrearMaterialRequest{
		Nombre: "Refuerzo acero",
		Costo:  decimal.NewFromInt(45),
		Stock:  &stock,
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	costo := decimal.NewFromInt(50)
	nombre := "Refuerzo acero galvanizado"
	actualizado, err := svc.Actualizar(ctx, id, dto.ActualizarMaterialRequest{
		Nombre: &nombre,
		Costo:  &costo,
	})
	require.NoError(t, err)
	assert.Equal(t, nombre, actualizado.Nombre)
	assert.True(t, actualizado.Stock.Equal(stock))

	guardado, err := matRepo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, guardado.Stock.Equal(stock))
}

func TestMaterialStats(t *testing.T) {
	svc, matRepo, _ := nuevoMaterialService()
	ctx := context.Background()

	stock := decimal.NewFromInt(10)
	require.NoError(t, matRepo.Create(ctx, &model.Material{Nombre: "Con stock", Stock: stock, Activo: true}))
	require.NoError(t, matRepo.Create(ctx, &model.Material{Nombre: "Sin stock", TieneVariantes: true, Activo: true}))
	require.NoError(t, matRepo.Create(ctx, &model.Material{Nombre: "Inactivo", Activo: false}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.ConVariantes)
	assert.Equal(t, int64(1), stats.SinStock)
}

func TestAlertasStock(t *testing.T) {
	svc, matRepo, _ := nuevoMaterialService()
	ctx := context.Background()

	bajo := &model.Material{
		Nombre:      "Perfil escaso",
		Unidad:      "metro",
		Stock:       decimal.NewFromInt(3),
		StockMinimo: decimal.NewFromInt(5),
		Activo:      true,
	}
	sobrado := &model.Material{
		Nombre:      "Perfil sobrado",
		Stock:       decimal.NewFromInt(80),
		StockMinimo: decimal.NewFromInt(5),
		Activo:      true,
	}
	require.NoError(t, matRepo.Create(ctx, bajo))
	require.NoError(t, matRepo.Create(ctx, sobrado))

	alertas, err := svc.AlertasStock(ctx)
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, bajo.ID.String(), alertas[0].MaterialID)
	assert.True(t, alertas[0].Stock.Equal(decimal.NewFromInt(3)))
}

func TestObtenerMaterialInexistente(t *testing.T) {
	svc, _, _ := nuevoMaterialService()

	_, err := svc.ObtenerPorID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

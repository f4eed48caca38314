package service_test

import (
	"context"
	"sync"
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

func nuevoInventario(t *testing.T) (service.InventarioService, *stubMaterialRepo, *stubMovimientoRepo, uuid.UUID) {
	t.Helper()
	matRepo := newStubMaterialRepo()
	movRepo := newStubMovimientoRepo()

	material := &model.Material{
		ID:          uuid.New(),
		Nombre:      "Perfil PVC blanco",
		Unidad:      "metro",
		Costo:       decimal.RequireFromString("85.50"),
		Stock:       decimal.NewFromInt(100),
		StockMinimo: decimal.NewFromInt(10),
		Activo:      true,
	}
	require.NoError(t, matRepo.Create(context.Background(), material))

	svc := service.NewInventarioService(movRepo, matRepo)
	return svc, matRepo, movRepo, material.ID
}

func TestRegistrarMovimientoEntrada(t *testing.T) {
	svc, matRepo, _, materialID := nuevoInventario(t)
	ctx := context.Background()
	usuarioID := uuid.New()

	resp, err := svc.RegistrarMovimiento(ctx, usuarioID, dto.RegistrarMovimientoRequest{
		MaterialID: materialID.String(),
		Tipo:       model.MovimientoEntrada,
		Motivo:     "compra",
		Cantidad:   decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Numero)
	assert.True(t, resp.CantidadAnterior.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.CantidadNueva.Equal(decimal.NewFromInt(125)))
	// Sin costo explícito se toma el costo vigente del material.
	assert.True(t, resp.CostoUnitario.Equal(decimal.RequireFromString("85.50")))
	assert.True(t, resp.CostoTotal.Equal(decimal.RequireFromString("2137.50")))
	assert.Equal(t, usuarioID.String(), resp.UsuarioID)

	material, err := matRepo.FindByID(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, material.Stock.Equal(decimal.NewFromInt(125)))
}

func TestRegistrarMovimientoSalida(t *testing.T) {
	svc, matRepo, _, materialID := nuevoInventario(t)
	ctx := context.Background()

	resp, err := svc.RegistrarMovimiento(ctx, uuid.New(), dto.RegistrarMovimientoRequest{
		MaterialID: materialID.String(),
		Tipo:       model.MovimientoSalida,
		Motivo:     "produccion",
		Cantidad:   decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.True(t, resp.CantidadNueva.Equal(decimal.NewFromInt(60)))

	material, err := matRepo.FindByID(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, material.Stock.Equal(decimal.NewFromInt(60)))
}

// La secuencia entrada/salida/ajuste debe dejar una cadena de snapshots donde
// cada CantidadAnterior coincide con la CantidadNueva del movimiento previo.
func TestLedgerEncadenaSnapshots(t *testing.T) {
	svc, _, movRepo, materialID := nuevoInventario(t)
	ctx := context.Background()
	usuarioID := uuid.New()

	pasos := []struct {
		tipo     string
		motivo   string
		cantidad int64
	}{
		{model.MovimientoEntrada, "compra", 50},
		{model.MovimientoSalida, "venta", 30},
		{model.MovimientoAjuste, "ajuste", 5},
		{model.MovimientoTransferencia, "produccion", 20},
	}
	for _, p := range pasos {
		_, err := svc.RegistrarMovimiento(ctx, usuarioID, dto.RegistrarMovimientoRequest{
			MaterialID: materialID.String(),
			Tipo:       p.tipo,
			Motivo:     p.motivo,
			Cantidad:   decimal.NewFromInt(p.cantidad),
		})
		require.NoError(t, err)
	}

	lista, err := svc.Listar(ctx, dto.MovimientoFilter{MaterialID: materialID.String()})
	require.NoError(t, err)
	require.Len(t, lista.Data, 4)

	anterior := decimal.NewFromInt(100)
	esperado := []int64{150, 120, 125, 105}
	for i, mov := range lista.Data {
		assert.True(t, mov.CantidadAnterior.Equal(anterior), "movimiento %d", i)
		assert.True(t, mov.CantidadNueva.Equal(decimal.NewFromInt(esperado[i])), "movimiento %d", i)
		anterior = mov.CantidadNueva
	}
	_ = movRepo
}

func TestRegistrarMovimientoStockInsuficiente(t *testing.T) {
	svc, matRepo, movRepo, materialID := nuevoInventario(t)
	ctx := context.Background()

	_, err := svc.RegistrarMovimiento(ctx, uuid.New(), dto.RegistrarMovimientoRequest{
		MaterialID: materialID.String(),
		Tipo:       model.MovimientoSalida,
		Motivo:     "venta",
		Cantidad:   decimal.NewFromInt(150),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientStock, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "Stock insuficiente")
	matRepo.liberar()

	// Ni el stock ni el libro cambiaron.
	material, err := matRepo.FindByID(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, material.Stock.Equal(decimal.NewFromInt(100)))
	_, total, err := movRepo.List(ctx, repositoryMovFilter(materialID))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRegistrarMovimientoPermitirNegativo(t *testing.T) {
	svc, matRepo, _, materialID := nuevoInventario(t)
	ctx := context.Background()

	resp, err := svc.RegistrarMovimiento(ctx, uuid.New(), dto.RegistrarMovimientoRequest{
		MaterialID:       materialID.String(),
		Tipo:             model.MovimientoSalida,
		Motivo:           "venta",
		Cantidad:         decimal.NewFromInt(150),
		PermitirNegativo: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.CantidadNueva.Equal(decimal.NewFromInt(-50)))

	material, err := matRepo.FindByID(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, material.Stock.IsNegative())
}

func TestRegistrarMovimientoValidaciones(t *testing.T) {
	svc, _, _, materialID := nuevoInventario(t)
	ctx := context.Background()
	usuarioID := uuid.New()

	casos := []struct {
		nombre string
		req    dto.RegistrarMovimientoRequest
		campo  string
	}{
		{
			nombre: "material_id inválido",
			req: dto.RegistrarMovimientoRequest{
				MaterialID: "no-es-uuid", Tipo: model.MovimientoEntrada,
				Motivo: "compra", Cantidad: decimal.NewFromInt(1),
			},
			campo: "material_id",
		},
		{
			nombre: "tipo desconocido",
			req: dto.RegistrarMovimientoRequest{
				MaterialID: materialID.String(), Tipo: "prestamo",
				Motivo: "compra", Cantidad: decimal.NewFromInt(1),
			},
			campo: "tipo",
		},
		{
			nombre: "motivo desconocido",
			req: dto.RegistrarMovimientoRequest{
				MaterialID: materialID.String(), Tipo: model.MovimientoEntrada,
				Motivo: "regalo", Cantidad: decimal.NewFromInt(1),
			},
			campo: "motivo",
		},
		{
			nombre: "cantidad cero",
			req: dto.RegistrarMovimientoRequest{
				MaterialID: materialID.String(), Tipo: model.MovimientoEntrada,
				Motivo: "compra", Cantidad: decimal.Zero,
			},
			campo: "cantidad",
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := svc.RegistrarMovimiento(ctx, usuarioID, c.req)
			require.Error(t, err)
			assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
			assert.Contains(t, apierror.FieldsOf(err), c.campo)
		})
	}
}

func TestRegistrarMovimientoMaterialInactivo(t *testing.T) {
	svc, matRepo, _, materialID := nuevoInventario(t)
	ctx := context.Background()
	require.NoError(t, matRepo.SoftDelete(ctx, materialID))

	_, err := svc.RegistrarMovimiento(ctx, uuid.New(), dto.RegistrarMovimientoRequest{
		MaterialID: materialID.String(),
		Tipo:       model.MovimientoEntrada,
		Motivo:     "compra",
		Cantidad:   decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestRegistrarMovimientoMaterialInexistente(t *testing.T) {
	svc, _, _, _ := nuevoInventario(t)

	_, err := svc.RegistrarMovimiento(context.Background(), uuid.New(), dto.RegistrarMovimientoRequest{
		MaterialID: uuid.NewString(),
		Tipo:       model.MovimientoEntrada,
		Motivo:     "compra",
		Cantidad:   decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

// Treinta entradas concurrentes de 1 metro cada una: el candado de fila del
// repositorio serializa lectura y escritura, así que ninguna actualización se
// pierde y cada snapshot del libro es consistente.
func TestRegistrarMovimientoConcurrente(t *testing.T) {
	svc, matRepo, movRepo, materialID := nuevoInventario(t)
	ctx := context.Background()
	usuarioID := uuid.New()

	const n = 30
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RegistrarMovimiento(ctx, usuarioID, dto.RegistrarMovimientoRequest{
				MaterialID: materialID.String(),
				Tipo:       model.MovimientoEntrada,
				Motivo:     "compra",
				Cantidad:   decimal.NewFromInt(1),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	material, err := matRepo.FindByID(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, material.Stock.Equal(decimal.NewFromInt(100+n)),
		"stock final %s", material.Stock)

	movimientos, total, err := movRepo.List(ctx, repositoryMovFilter(materialID))
	require.NoError(t, err)
	assert.Equal(t, int64(n), total)
	for _, m := range movimientos {
		assert.True(t, m.CantidadNueva.Equal(m.CantidadAnterior.Add(decimal.NewFromInt(1))))
	}
}

func TestListarMovimientosPaginacion(t *testing.T) {
	svc, _, _, materialID := nuevoInventario(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.RegistrarMovimiento(ctx, uuid.New(), dto.RegistrarMovimientoRequest{
			MaterialID: materialID.String(),
			Tipo:       model.MovimientoEntrada,
			Motivo:     "compra",
			Cantidad:   decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	// Límites fuera de rango caen al default.
	lista, err := svc.Listar(ctx, dto.MovimientoFilter{Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, 100, lista.Limit)
	assert.Equal(t, 1, lista.Page)
	assert.Equal(t, int64(3), lista.Total)
	assert.Equal(t, 1, lista.TotalPages)

	_, err = svc.Listar(ctx, dto.MovimientoFilter{MaterialID: "zzz"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

package service_test

import (
	"context"
	"sync"

	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory TipoProductoRepository stub ────────────────────────────────────

type stubTipoProductoRepo struct {
	tipos   map[uuid.UUID]*model.TipoProducto
	modelos map[uuid.UUID]*model.TipoProductoModelo
}

func newStubTipoProductoRepo() *stubTipoProductoRepo {
	return &stubTipoProductoRepo{
		tipos:   make(map[uuid.UUID]*model.TipoProducto),
		modelos: make(map[uuid.UUID]*model.TipoProductoModelo),
	}
}

func (r *stubTipoProductoRepo) Create(_ context.Context, t *model.TipoProducto) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TipoProducto, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTipoProductoRepo) List(_ context.Context, filter repository.ActivoFilter) ([]model.TipoProducto, error) {
	var result []model.TipoProducto
	for _, t := range r.tipos {
		if incluirActivo(t.Activo, filter) {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *stubTipoProductoRepo) Update(_ context.Context, t *model.TipoProducto) error {
	r.tipos[t.ID] = t
	return nil
}

func (r *stubTipoProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	t, ok := r.tipos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Activo = false
	return nil
}

func (r *stubTipoProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	t, ok := r.tipos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Activo = true
	return nil
}

func (r *stubTipoProductoRepo) CreateModelo(_ context.Context, m *model.TipoProductoModelo) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.modelos[m.ID] = m
	return nil
}

func (r *stubTipoProductoRepo) FindModeloByID(_ context.Context, id uuid.UUID) (*model.TipoProductoModelo, error) {
	m, ok := r.modelos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubTipoProductoRepo) ListModelos(_ context.Context, tipoID uuid.UUID, filter repository.ActivoFilter) ([]model.TipoProductoModelo, error) {
	var result []model.TipoProductoModelo
	for _, m := range r.modelos {
		if m.TipoProductoID == tipoID && incluirActivo(m.Activo, filter) {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *stubTipoProductoRepo) SoftDeleteModelo(_ context.Context, id uuid.UUID) error {
	m, ok := r.modelos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Activo = false
	return nil
}

// ── In-memory MaterialRepository stub ────────────────────────────────────────

// stubMaterialRepo guards the lock/update/unlock cycle with a mutex so the
// concurrency test exercises the same serialization the row lock provides.
type stubMaterialRepo struct {
	mu         sync.Mutex
	rowLock    sync.Mutex
	materiales map[uuid.UUID]*model.Material
}

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materiales: make(map[uuid.UUID]*model.Material)}
}

func (r *stubMaterialRepo) DB() *gorm.DB { return nil }

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materiales[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materiales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *m
	return &copia, nil
}

func (r *stubMaterialRepo) List(_ context.Context, filter repository.MaterialFilter) ([]model.Material, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Material
	for _, m := range r.materiales {
		if incluirActivo(m.Activo, filter.ActivoFilter) {
			result = append(result, *m)
		}
	}
	return result, int64(len(result)), nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materiales[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materiales[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Activo = false
	return nil
}

func (r *stubMaterialRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materiales[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Activo = true
	return nil
}

func (r *stubMaterialRepo) Stats(_ context.Context) (*repository.MaterialStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repository.MaterialStats{}
	for _, m := range r.materiales {
		if !m.Activo {
			continue
		}
		stats.Total++
		if m.TieneVariantes {
			stats.ConVariantes++
		}
		if !m.Stock.IsPositive() {
			stats.SinStock++
		}
	}
	return stats, nil
}

func (r *stubMaterialRepo) ListBajoMinimo(_ context.Context) ([]model.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Material
	for _, m := range r.materiales {
		if m.Activo && m.Stock.LessThanOrEqual(m.StockMinimo) {
			result = append(result, *m)
		}
	}
	return result, nil
}

// FindByIDForUpdateTx toma el candado de fila; SetStockTx lo libera tras
// escribir, igual que el commit libera el FOR UPDATE real.
func (r *stubMaterialRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Material, error) {
	r.rowLock.Lock()
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.materiales[id]
	if !ok {
		r.rowLock.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	if !m.Activo {
		// El servicio corta antes de SetStockTx; liberar aquí evita deadlock.
		r.rowLock.Unlock()
		copia := *m
		return &copia, nil
	}
	copia := *m
	return &copia, nil
}

func (r *stubMaterialRepo) SetStockTx(_ *gorm.DB, id uuid.UUID, stock decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.rowLock.Unlock()
	m, ok := r.materiales[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Stock = stock
	return nil
}

// liberar desbloquea el candado de fila tras un camino de error del servicio
// (stock insuficiente) donde SetStockTx nunca llega a ejecutarse.
func (r *stubMaterialRepo) liberar() {
	r.rowLock.Unlock()
}

// ── In-memory MovimientoRepository stub ──────────────────────────────────────

type stubMovimientoRepo struct {
	mu          sync.Mutex
	movimientos []*model.MovimientoInventario
	secuencia   int64
}

func newStubMovimientoRepo() *stubMovimientoRepo { return &stubMovimientoRepo{} }

func (r *stubMovimientoRepo) DB() *gorm.DB { return nil }

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movimientos = append(r.movimientos, m)
	return nil
}

func (r *stubMovimientoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MovimientoInventario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMovimientoRepo) List(_ context.Context, filter repository.MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.MovimientoInventario
	for _, m := range r.movimientos {
		if filter.MaterialID != nil && m.MaterialID != *filter.MaterialID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.Motivo != "" && m.Motivo != filter.Motivo {
			continue
		}
		result = append(result, *m)
	}
	return result, int64(len(result)), nil
}

func (r *stubMovimientoRepo) NextNumero(_ context.Context, _ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.secuencia++
	return r.secuencia, nil
}

// ── In-memory PagoRepository stub ────────────────────────────────────────────

type stubPagoRepo struct {
	mu        sync.Mutex
	pagos     map[uuid.UUID]*model.Pago
	secuencia int64
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago)}
}

func (r *stubPagoRepo) Create(_ context.Context, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.secuencia++
	p.Numero = r.secuencia
	r.pagos[p.ID] = p
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pago, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pagos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubPagoRepo) List(_ context.Context, filter repository.PagoFilter) ([]model.Pago, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Pago
	for _, p := range r.pagos {
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		if filter.Metodo != "" && p.Metodo != filter.Metodo {
			continue
		}
		if filter.FacturaID != nil && p.FacturaID != *filter.FacturaID {
			continue
		}
		if filter.ClienteID != nil && p.ClienteID != *filter.ClienteID {
			continue
		}
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubPagoRepo) TransicionarEstado(_ context.Context, id uuid.UUID, estado string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pagos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if p.Estado != model.PagoPendiente {
		return repository.ErrPagoNoPendiente
	}
	p.Estado = estado
	return nil
}

func (r *stubPagoRepo) UpdateComprobanteURL(_ context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pagos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ComprobanteURL = &url
	return nil
}

// ── In-memory ProveedorRepository stub ───────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context, filter repository.ActivoFilter) ([]model.Proveedor, error) {
	var result []model.Proveedor
	for _, p := range r.proveedores {
		if incluirActivo(p.Activo, filter) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProveedorRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

// ── In-memory FormulaRepository stub ─────────────────────────────────────────

// stubFormulaRepo enforces the partial unique index on
// (tipo_producto_id, orden) WHERE activo the same way postgres does: the
// insert itself fails with gorm.ErrDuplicatedKey.
type stubFormulaRepo struct {
	mu       sync.Mutex
	formulas map[uuid.UUID]*model.Formula
}

func newStubFormulaRepo() *stubFormulaRepo {
	return &stubFormulaRepo{formulas: make(map[uuid.UUID]*model.Formula)}
}

func (r *stubFormulaRepo) Create(_ context.Context, f *model.Formula) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otra := range r.formulas {
		if otra.TipoProductoID == f.TipoProductoID && otra.Orden == f.Orden && otra.Activo {
			return gorm.ErrDuplicatedKey
		}
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.formulas[f.ID] = f
	return nil
}

func (r *stubFormulaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Formula, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.formulas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFormulaRepo) ListByTipoProducto(_ context.Context, tipoID uuid.UUID, filter repository.ActivoFilter) ([]model.Formula, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Formula
	for _, f := range r.formulas {
		if f.TipoProductoID == tipoID && incluirActivo(f.Activo, filter) {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (r *stubFormulaRepo) OrdenExiste(_ context.Context, tipoID uuid.UUID, orden int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.formulas {
		if f.TipoProductoID == tipoID && f.Orden == orden && f.Activo {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFormulaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.formulas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.Activo = false
	return nil
}

// ── In-memory ParametroManoObraRepository stub ───────────────────────────────

type stubParametroRepo struct {
	parametros map[uuid.UUID]*model.ParametroManoObra
}

func newStubParametroRepo() *stubParametroRepo {
	return &stubParametroRepo{parametros: make(map[uuid.UUID]*model.ParametroManoObra)}
}

func (r *stubParametroRepo) Create(_ context.Context, p *model.ParametroManoObra) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.parametros[p.ID] = p
	return nil
}

func (r *stubParametroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ParametroManoObra, error) {
	p, ok := r.parametros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubParametroRepo) List(_ context.Context, filter repository.ActivoFilter) ([]model.ParametroManoObra, error) {
	var result []model.ParametroManoObra
	for _, p := range r.parametros {
		if incluirActivo(p.Activo, filter) {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubParametroRepo) Update(_ context.Context, p *model.ParametroManoObra) error {
	r.parametros[p.ID] = p
	return nil
}

func (r *stubParametroRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.parametros[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

// ── In-memory UsuarioRepository stub ─────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, filter repository.ActivoFilter) ([]model.Usuario, error) {
	var result []model.Usuario
	for _, u := range r.usuarios {
		if incluirActivo(u.Activo, filter) {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = true
	return nil
}

// ── In-memory ReparacionRepository stub ──────────────────────────────────────

type stubReparacionRepo struct {
	reparaciones map[uuid.UUID]*model.Reparacion
}

func newStubReparacionRepo() *stubReparacionRepo {
	return &stubReparacionRepo{reparaciones: make(map[uuid.UUID]*model.Reparacion)}
}

func (r *stubReparacionRepo) Create(_ context.Context, rep *model.Reparacion) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	r.reparaciones[rep.ID] = rep
	return nil
}

func (r *stubReparacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reparacion, error) {
	rep, ok := r.reparaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rep, nil
}

func (r *stubReparacionRepo) List(_ context.Context, filter repository.ActivoFilter) ([]model.Reparacion, error) {
	var result []model.Reparacion
	for _, rep := range r.reparaciones {
		if incluirActivo(rep.Activo, filter) {
			result = append(result, *rep)
		}
	}
	return result, nil
}

func (r *stubReparacionRepo) Update(_ context.Context, rep *model.Reparacion) error {
	r.reparaciones[rep.ID] = rep
	return nil
}

func (r *stubReparacionRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	rep, ok := r.reparaciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rep.Activo = false
	return nil
}

// ── In-memory VarianteRepository stub ────────────────────────────────────────

type stubVarianteRepo struct {
	pvc      map[uuid.UUID]*model.ColorPVC
	aluminio map[uuid.UUID]*model.ColorAluminio
	vidrio   map[uuid.UUID]*model.TipoVidrio
}

func newStubVarianteRepo() *stubVarianteRepo {
	return &stubVarianteRepo{
		pvc:      make(map[uuid.UUID]*model.ColorPVC),
		aluminio: make(map[uuid.UUID]*model.ColorAluminio),
		vidrio:   make(map[uuid.UUID]*model.TipoVidrio),
	}
}

func (r *stubVarianteRepo) CreateColorPVC(_ context.Context, v *model.ColorPVC) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.pvc[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) FindColorPVC(_ context.Context, id uuid.UUID) (*model.ColorPVC, error) {
	v, ok := r.pvc[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVarianteRepo) ListColoresPVC(_ context.Context, filter repository.ActivoFilter) ([]model.ColorPVC, error) {
	var result []model.ColorPVC
	for _, v := range r.pvc {
		if incluirActivo(v.Activo, filter) {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *stubVarianteRepo) UpdateColorPVC(_ context.Context, v *model.ColorPVC) error {
	r.pvc[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) SoftDeleteColorPVC(_ context.Context, id uuid.UUID) error {
	v, ok := r.pvc[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Activo = false
	return nil
}

func (r *stubVarianteRepo) CreateColorAluminio(_ context.Context, v *model.ColorAluminio) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.aluminio[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) FindColorAluminio(_ context.Context, id uuid.UUID) (*model.ColorAluminio, error) {
	v, ok := r.aluminio[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVarianteRepo) ListColoresAluminio(_ context.Context, filter repository.ActivoFilter) ([]model.ColorAluminio, error) {
	var result []model.ColorAluminio
	for _, v := range r.aluminio {
		if incluirActivo(v.Activo, filter) {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *stubVarianteRepo) UpdateColorAluminio(_ context.Context, v *model.ColorAluminio) error {
	r.aluminio[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) SoftDeleteColorAluminio(_ context.Context, id uuid.UUID) error {
	v, ok := r.aluminio[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Activo = false
	return nil
}

func (r *stubVarianteRepo) CreateTipoVidrio(_ context.Context, v *model.TipoVidrio) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vidrio[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) FindTipoVidrio(_ context.Context, id uuid.UUID) (*model.TipoVidrio, error) {
	v, ok := r.vidrio[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVarianteRepo) ListTiposVidrio(_ context.Context, filter repository.ActivoFilter) ([]model.TipoVidrio, error) {
	var result []model.TipoVidrio
	for _, v := range r.vidrio {
		if incluirActivo(v.Activo, filter) {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *stubVarianteRepo) UpdateTipoVidrio(_ context.Context, v *model.TipoVidrio) error {
	r.vidrio[v.ID] = v
	return nil
}

func (r *stubVarianteRepo) SoftDeleteTipoVidrio(_ context.Context, id uuid.UUID) error {
	v, ok := r.vidrio[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Activo = false
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func repositoryMovFilter(materialID uuid.UUID) repository.MovimientoFilter {
	return repository.MovimientoFilter{MaterialID: &materialID}
}

func incluirActivo(activo bool, filter repository.ActivoFilter) bool {
	switch filter.Activo {
	case "false":
		return !activo
	case "all":
		return true
	default:
		return activo
	}
}

package router

import (
	"time"

	"github.com/celvintr/arquialum-sub003/internal/config"
	"github.com/celvintr/arquialum-sub003/internal/handler"
	"github.com/celvintr/arquialum-sub003/internal/middleware"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"
	"github.com/celvintr/arquialum-sub003/internal/service"
	"github.com/celvintr/arquialum-sub003/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	tipoProductoRepo := repository.NewTipoProductoRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	formulaRepo := repository.NewFormulaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	varianteRepo := repository.NewVarianteRepository(db)
	parametroRepo := repository.NewParametroManoObraRepository(db)
	reparacionRepo := repository.NewReparacionRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(tipoProductoRepo)
	materialSvc := service.NewMaterialService(materialRepo, proveedorRepo, rdb)
	formulaSvc := service.NewFormulaService(formulaRepo, tipoProductoRepo, materialRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	varianteSvc := service.NewVarianteService(varianteRepo)
	parametroSvc := service.NewParametroService(parametroRepo)
	reparacionSvc := service.NewReparacionService(reparacionRepo)
	inventarioSvc := service.NewInventarioService(movimientoRepo, materialRepo)
	pagoSvc := service.NewPagoService(pagoRepo, dispatcher)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpirationHours)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	materialesH := handler.NewMaterialesHandler(materialSvc)
	formulasH := handler.NewFormulasHandler(formulaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	variantesH := handler.NewVariantesHandler(varianteSvc)
	parametrosH := handler.NewParametrosHandler(parametroSvc)
	reparacionesH := handler.NewReparacionesHandler(reparacionSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc, materialSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	authH := handler.NewAuthHandler(usuarioSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	lectura := middleware.RequireRole(model.RolAdmin, model.RolVendedor, model.RolUsuario)
	escritura := middleware.RequireRole(model.RolAdmin, model.RolVendedor)
	admin := middleware.RequireRole(model.RolAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Catálogo de tipos de producto y modelos
		v1.GET("/tipos-producto", lectura, catalogoH.ListarTipos)
		v1.GET("/tipos-producto/:id", lectura, catalogoH.ObtenerTipo)
		v1.GET("/tipos-producto/:id/modelos", lectura, catalogoH.ListarModelos)
		v1.GET("/tipos-producto/:id/formulas", lectura, formulasH.ListarPorTipoProducto)
		tipos := v1.Group("/tipos-producto", escritura)
		{
			tipos.POST("", catalogoH.CrearTipo)
			tipos.PUT("/:id", catalogoH.ActualizarTipo)
			tipos.DELETE("/:id", catalogoH.DesactivarTipo)
			tipos.POST("/:id/reactivar", catalogoH.ReactivarTipo)
			tipos.POST("/:id/modelos", catalogoH.CrearModelo)
			tipos.DELETE("/:id/modelos/:modeloId", catalogoH.EliminarModelo)
		}

		// Materiales — stats va antes de :id para que Gin no lo capture
		v1.GET("/materiales/stats", lectura, materialesH.Stats)
		v1.GET("/materiales", lectura, materialesH.Listar)
		v1.GET("/materiales/:id", lectura, materialesH.Obtener)
		mats := v1.Group("/materiales", escritura)
		{
			mats.POST("", materialesH.Crear)
			mats.PUT("/:id", materialesH.Actualizar)
			mats.DELETE("/:id", materialesH.Desactivar)
			mats.POST("/:id/reactivar", materialesH.Reactivar)
		}

		// Fórmulas
		v1.POST("/formulas", escritura, formulasH.Crear)
		v1.DELETE("/formulas/:id", escritura, formulasH.Desactivar)

		// Proveedores
		v1.GET("/proveedores", lectura, proveedoresH.Listar)
		v1.GET("/proveedores/:id", lectura, proveedoresH.Obtener)
		provs := v1.Group("/proveedores", escritura)
		{
			provs.POST("", proveedoresH.Crear)
			provs.PUT("/:id", proveedoresH.Actualizar)
			provs.DELETE("/:id", proveedoresH.Desactivar)
			provs.POST("/:id/reactivar", proveedoresH.Reactivar)
		}

		// Variantes — tres familias más el combinado /tipos
		v1.GET("/variantes/tipos", lectura, variantesH.Tipos)
		v1.GET("/variantes/colores-pvc", lectura, variantesH.ListarColoresPVC)
		v1.GET("/variantes/colores-aluminio", lectura, variantesH.ListarColoresAluminio)
		v1.GET("/variantes/tipos-vidrio", lectura, variantesH.ListarTiposVidrio)
		vars := v1.Group("/variantes", escritura)
		{
			vars.POST("/colores-pvc", variantesH.CrearColorPVC)
			vars.PUT("/colores-pvc/:id", variantesH.ActualizarColorPVC)
			vars.DELETE("/colores-pvc/:id", variantesH.DesactivarColorPVC)
			vars.POST("/colores-aluminio", variantesH.CrearColorAluminio)
			vars.PUT("/colores-aluminio/:id", variantesH.ActualizarColorAluminio)
			vars.DELETE("/colores-aluminio/:id", variantesH.DesactivarColorAluminio)
			vars.POST("/tipos-vidrio", variantesH.CrearTipoVidrio)
			vars.PUT("/tipos-vidrio/:id", variantesH.ActualizarTipoVidrio)
			vars.DELETE("/tipos-vidrio/:id", variantesH.DesactivarTipoVidrio)
		}

		// Parámetros de mano de obra
		v1.GET("/parametros-mano-obra", lectura, parametrosH.Listar)
		v1.GET("/parametros-mano-obra/:id", lectura, parametrosH.Obtener)
		params := v1.Group("/parametros-mano-obra", admin)
		{
			params.POST("", parametrosH.Crear)
			params.PUT("/:id", parametrosH.Actualizar)
			params.DELETE("/:id", parametrosH.Desactivar)
		}

		// Reparaciones
		v1.GET("/reparaciones", lectura, reparacionesH.Listar)
		v1.GET("/reparaciones/:id", lectura, reparacionesH.Obtener)
		reps := v1.Group("/reparaciones", escritura)
		{
			reps.POST("", reparacionesH.Crear)
			reps.PUT("/:id", reparacionesH.Actualizar)
			reps.DELETE("/:id", reparacionesH.Desactivar)
		}

		// Inventario — el libro mayor de movimientos
		inv := v1.Group("/inventario")
		{
			inv.POST("/movimientos", escritura, inventarioH.RegistrarMovimiento)
			inv.GET("/movimientos", lectura, inventarioH.ListarMovimientos)
			inv.GET("/movimientos/:id", lectura, inventarioH.ObtenerMovimiento)
			inv.GET("/alertas", lectura, inventarioH.Alertas)
		}

		// Pagos — confirmación/rechazo reservados a admin
		v1.POST("/pagos", escritura, pagosH.Registrar)
		v1.GET("/pagos", lectura, pagosH.Listar)
		v1.GET("/pagos/:id", lectura, pagosH.Obtener)
		v1.POST("/pagos/:id/confirmar", admin, pagosH.Confirmar)
		v1.POST("/pagos/:id/rechazar", admin, pagosH.Rechazar)

		// Usuarios — administración exclusiva
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.POST("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

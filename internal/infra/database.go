package infra

import (
	"fmt"
	"sync"

	"github.com/celvintr/arquialum-sub003/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// Database returns the process-wide GORM handle, creating it on first use.
// Concurrent initializers race to create at most one connection; every later
// call reuses it. Close tears it down at process exit.
func Database(dsn string) (*gorm.DB, error) {
	dbOnce.Do(func() {
		dbConn, dbErr = newDatabase(dsn)
	})
	return dbConn, dbErr
}

// Close releases the underlying connection pool. Safe to call when the
// database was never initialized.
func Close() error {
	if dbConn == nil {
		return nil
	}
	sqlDB, err := dbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
func newDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates every table plus the ledger numbering
// sequences. Also used by integration tests against a disposable postgres
// container.
func RunMigrations(db *gorm.DB) error {
	if err := autoMigrate(db); err != nil {
		return err
	}
	// Ledger numbers come from sequences so concurrent writers never collide.
	// The partial index backs the one-active-formula-per-orden rule at the
	// storage layer; the service pre-check alone is racy.
	for _, stmt := range []string{
		"CREATE SEQUENCE IF NOT EXISTS movimientos_inventario_numero_seq",
		"CREATE SEQUENCE IF NOT EXISTS pagos_numero_seq",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_formulas_orden_activo ON formulas (tipo_producto_id, orden) WHERE activo",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.TipoProducto{},
		&model.TipoProductoModelo{},
		&model.Proveedor{},
		&model.Material{},
		&model.Formula{},
		&model.ColorPVC{},
		&model.ColorAluminio{},
		&model.TipoVidrio{},
		&model.ParametroManoObra{},
		&model.Reparacion{},
		&model.MovimientoInventario{},
		&model.Pago{},
		&model.Usuario{},
	)
}

package service

import (
	"context"
	"errors"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// mapFindErr converts a repository lookup failure into the domain taxonomy:
// record-not-found becomes NotFound with msg, anything else is Internal.
func mapFindErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(msg)
	}
	return apierror.Internal(err)
}

// filtro maps the query-string activo convention onto the repository filter.
func filtro(activo string) repository.ActivoFilter {
	return repository.ActivoFilter{Activo: activo}
}

// totalPages computes pagination metadata the way every list endpoint does.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

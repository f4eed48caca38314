package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/celvintr/arquialum-sub003/internal/apierror"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{apierror.Validationf("campo", "requerido"), http.StatusUnprocessableEntity},
		{apierror.NotFound("no existe"), http.StatusNotFound},
		{apierror.Conflict("duplicado"), http.StatusConflict},
		{apierror.InsufficientStock("sin existencias"), http.StatusConflict},
		{apierror.Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("cualquier cosa"), http.StatusInternalServerError},
	}
	for _, c := range casos {
		assert.Equal(t, c.status, apierror.StatusOf(c.err), c.err.Error())
	}
}

func TestStatusOfEnvuelto(t *testing.T) {
	// errors.As debe atravesar wrapping estándar.
	err := fmt.Errorf("capa externa: %w", apierror.NotFound("no existe"))
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(err))
}

func TestFieldsOf(t *testing.T) {
	err := apierror.Validation(map[string]string{
		"nombre": "requerido",
		"monto":  "debe ser mayor a cero",
	})
	fields := apierror.FieldsOf(err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "requerido", fields["nombre"])

	assert.Nil(t, apierror.FieldsOf(apierror.Conflict("x")))
	assert.Nil(t, apierror.FieldsOf(errors.New("x")))
}

func TestInternalConservaCausa(t *testing.T) {
	causa := errors.New("conexión perdida")
	err := apierror.Internal(causa)

	assert.ErrorIs(t, err, causa)
	// El mensaje al cliente nunca es la causa cruda.
	assert.Equal(t, apierror.KindInternal, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "Error interno del servidor")
}

package service_test

import (
	"context"
	"testing"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretoPrueba = "secreto-de-prueba"

func nuevoUsuarioService() (service.UsuarioService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	return service.NewUsuarioService(repo, secretoPrueba, 8), repo
}

func crearVendedor(t *testing.T, svc service.UsuarioService) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Ana Torres",
		Email:    "ana@arquialum.mx",
		Password: "secreta123",
		Rol:      model.RolVendedor,
	})
	require.NoError(t, err)
	return resp
}

func TestCrearUsuario(t *testing.T) {
	svc, repo := nuevoUsuarioService()

	resp := crearVendedor(t, svc)
	assert.Equal(t, model.RolVendedor, resp.Rol)
	assert.True(t, resp.Activo)

	// El hash queda en el repositorio, nunca en la respuesta.
	guardado, err := repo.FindByEmail(context.Background(), "ana@arquialum.mx")
	require.NoError(t, err)
	assert.NotEmpty(t, guardado.PasswordHash)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash)
}

func TestCrearUsuarioRolInvalido(t *testing.T) {
	svc, _ := nuevoUsuarioService()

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Ana Torres",
		Email:    "ana@arquialum.mx",
		Password: "secreta123",
		Rol:      "gerente",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, apierror.FieldsOf(err), "rol")
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	svc, _ := nuevoUsuarioService()
	crearVendedor(t, svc)

	// La normalización de email también atrapa duplicados con mayúsculas.
	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Otra Ana",
		Email:    "  ANA@Arquialum.MX ",
		Password: "otra12345",
		Rol:      model.RolUsuario,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc, _ := nuevoUsuarioService()
	creado := crearVendedor(t, svc)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ANA@arquialum.mx",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, creado.ID, resp.Usuario.ID)

	// El token debe validar con el mismo secreto y llevar uid y rol.
	var claims service.Claims
	token, err := jwt.ParseWithClaims(resp.AccessToken, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secretoPrueba), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, creado.ID, claims.UsuarioID)
	assert.Equal(t, model.RolVendedor, claims.Rol)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	svc, _ := nuevoUsuarioService()
	crearVendedor(t, svc)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@arquialum.mx", Password: "equivocada"})
	assert.ErrorIs(t, err, service.ErrCredenciales)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nadie@arquialum.mx", Password: "secreta123"})
	assert.ErrorIs(t, err, service.ErrCredenciales)
}

// Un usuario desactivado no puede iniciar sesión: la búsqueda por email sólo
// considera cuentas activas.
func TestLoginUsuarioDesactivado(t *testing.T) {
	svc, _ := nuevoUsuarioService()
	creado := crearVendedor(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Desactivar(ctx, uuid.MustParse(creado.ID)))

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@arquialum.mx", Password: "secreta123"})
	assert.ErrorIs(t, err, service.ErrCredenciales)

	require.NoError(t, svc.Reactivar(ctx, uuid.MustParse(creado.ID)))
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ana@arquialum.mx", Password: "secreta123"})
	assert.NoError(t, err)
}

func TestActualizarUsuario(t *testing.T) {
	svc, _ := nuevoUsuarioService()
	creado := crearVendedor(t, svc)
	ctx := context.Background()
	id := uuid.MustParse(creado.ID)

	segundo, err := svc.Crear(ctx, dto.CrearUsuarioRequest{
		Nombre:   "Luis Mora",
		Email:    "luis@arquialum.mx",
		Password: "secreta456",
		Rol:      model.RolUsuario,
	})
	require.NoError(t, err)
	_ = segundo

	// Cambiar a un email ya ocupado es conflicto.
	ocupado := "luis@arquialum.mx"
	_, err = svc.Actualizar(ctx, id, dto.ActualizarUsuarioRequest{Email: &ocupado})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	rol := model.RolAdmin
	actualizado, err := svc.Actualizar(ctx, id, dto.ActualizarUsuarioRequest{Rol: &rol})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, actualizado.Rol)

	// Cambio de contraseña surte efecto en el siguiente login.
	password := "renovada789"
	_, err = svc.Actualizar(ctx, id, dto.ActualizarUsuarioRequest{Password: &password})
	require.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ana@arquialum.mx", Password: "renovada789"})
	assert.NoError(t, err)
}

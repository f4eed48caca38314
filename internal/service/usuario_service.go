package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/celvintr/arquialum-sub003/internal/apierror"
	"github.com/celvintr/arquialum-sub003/internal/dto"
	"github.com/celvintr/arquialum-sub003/internal/model"
	"github.com/celvintr/arquialum-sub003/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredenciales is returned on bad email/password; the handler maps it to
// 401 without revealing which of the two was wrong.
var ErrCredenciales = errors.New("credenciales inválidas")

// Claims is the JWT payload issued at login.
type Claims struct {
	UsuarioID string `json:"uid"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

type UsuarioService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, filter dto.ListFilter) ([]dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo       repository.UsuarioRepository
	jwtSecret  []byte
	expiration time.Duration
}

func NewUsuarioService(repo repository.UsuarioRepository, jwtSecret string, expirationHours int) UsuarioService {
	return &usuarioService{
		repo:       repo,
		jwtSecret:  []byte(jwtSecret),
		expiration: time.Duration(expirationHours) * time.Hour,
	}
}

func (s *usuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizarEmail(req.Email)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciales
		}
		return nil, apierror.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrCredenciales
	}

	now := time.Now()
	claims := Claims{
		UsuarioID: u.ID.String(),
		Rol:       u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(s.expiration.Seconds()),
		Usuario:     *usuarioToResponse(u),
	}, nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if !model.RolValido(req.Rol) {
		return nil, apierror.Validationf("rol", "debe ser uno de: %s", strings.Join(model.RolesUsuario, ", "))
	}
	email := normalizarEmail(req.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apierror.Conflict("Ya existe un usuario con ese email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Usuario no encontrado")
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Listar(ctx context.Context, filter dto.ListFilter) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx, filtro(filter.Activo))
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *usuarioToResponse(&usuarios[i]))
	}
	return resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Usuario no encontrado")
	}

	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Email != nil {
		email := normalizarEmail(*req.Email)
		if email != u.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				return nil, apierror.Conflict("Ya existe un usuario con ese email")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Internal(err)
			}
			u.Email = email
		}
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Rol != nil {
		if !model.RolValido(*req.Rol) {
			return nil, apierror.Validationf("rol", "debe ser uno de: %s", strings.Join(model.RolesUsuario, ", "))
		}
		u.Rol = *req.Rol
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Usuario no encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *usuarioService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Usuario no encontrado")
	}
	if err := s.repo.Reactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func normalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/config"
	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/model"
	"github.com/jtruch-maker/precificagourmet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// AuthService handles registration, login and profile lookup. Register logs
// the new user in right away, so both flows return a token.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Perfil(ctx context.Context, userID uuid.UUID) (*dto.UsuarioResponse, error)
}

type authService struct {
	usuarios  repository.UsuarioRepository
	jwtSecret []byte
	expiry    time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{
		usuarios:  usuarios,
		jwtSecret: []byte(cfg.JWTSecret),
		expiry:    time.Duration(cfg.JWTExpirationHours) * time.Hour,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.usuarios.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailEmUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		Nome:         strings.TrimSpace(req.Nome),
		Email:        email,
		PasswordHash: string(hash),
		Activo:       true,
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}

	log.Info().Str("email", u.Email).Msg("usuário registrado")
	return s.emitirToken(u)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if !u.Activo {
		return nil, ErrCredenciaisInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrCredenciaisInvalidas
	}

	return s.emitirToken(u)
}

func (s *authService) emitirToken(u *model.Usuario) (*dto.LoginResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"nome":    u.Nome,
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.expiry.Seconds()),
		User:        *usuarioResponse(u),
	}, nil
}

func (s *authService) Perfil(ctx context.Context, userID uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.usuarios.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return usuarioResponse(u), nil
}

func usuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{ID: u.ID.String(), Nome: u.Nome, Email: u.Email}
}

package service

import (
	"context"
	"testing"

	"github.com/jtruch-maker/precificagourmet/internal/config"
	"github.com/jtruch-maker/precificagourmet/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(repo *stubUsuarioRepo) AuthService {
	return NewAuthService(repo, &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 8,
	})
}

func TestRegisterELogin(t *testing.T) {
	repo := &stubUsuarioRepo{}
	svc := testAuthService(repo)

	registro, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nome:     "Maria Chef",
		Email:    "Maria@Restaurante.com",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@restaurante.com", registro.User.Email, "email é normalizado para minúsculas")
	assert.NotEmpty(t, registro.AccessToken, "registro já autentica")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@restaurante.com",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("segredo-de-teste"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registro.User.ID, claims["user_id"])
	assert.Equal(t, "maria@restaurante.com", claims["email"])
	assert.Equal(t, "Maria Chef", claims["nome"])
}

func TestRegisterEmailDuplicado(t *testing.T) {
	repo := &stubUsuarioRepo{}
	svc := testAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nome: "Maria", Email: "maria@restaurante.com", Password: "segredo123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Nome: "Outra Maria", Email: "MARIA@restaurante.com", Password: "outra-senha",
	})
	require.ErrorIs(t, err, ErrEmailEmUso)
}

func TestLoginSenhaErrada(t *testing.T) {
	repo := &stubUsuarioRepo{}
	svc := testAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nome: "Maria", Email: "maria@restaurante.com", Password: "segredo123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "maria@restaurante.com", Password: "senha-errada",
	})
	require.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginUsuarioDesconhecido(t *testing.T) {
	svc := testAuthService(&stubUsuarioRepo{})

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@restaurante.com", Password: "tanto-faz",
	})
	require.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

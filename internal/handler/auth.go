package handler

import (
	"net/http"

	"github.com/jtruch-maker/precificagourmet/internal/apierror"
	"github.com/jtruch-maker/precificagourmet/internal/dto"
	"github.com/jtruch-maker/precificagourmet/internal/middleware"
	"github.com/jtruch-maker/precificagourmet/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register godoc
//
//	@Summary	Cadastra um novo usuário e já o autentica
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.LoginResponse
//	@Failure	409		{object}	apierror.APIError
//	@Router		/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
//
//	@Summary	Autentica e emite um token JWT
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	401		{object}	apierror.APIError
//	@Router		/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Perfil returns the authenticated user's profile.
func (h *AuthHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token de autenticação ausente"))
		return
	}
	user, err := h.auth.Perfil(c.Request.Context(), claims.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/jtruch-maker/precificagourmet/internal/apierror"
	"github.com/jtruch-maker/precificagourmet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Let numeric rules (min, gt) apply directly to decimal fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate decodes the JSON body and runs struct validation. On failure
// it writes the error response and returns false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Corpo da requisição inválido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// uuidParam parses the :id path parameter. Writes a 400 and returns false on
// malformed ids.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Identificador inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service sentinel errors to HTTP statuses. Unknown
// errors become an opaque 500 — internals never leak to clients.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntradaInvalida):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Registro não encontrado"))
	case errors.Is(err, service.ErrEmailEmUso):
		c.JSON(http.StatusConflict, apierror.New("Email já cadastrado"))
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciais inválidas"))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("erro interno")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}

package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Run("wraps the original error", func(t *testing.T) {
		original := stderrors.New("falha de disco")
		err := apierrors.InternalServer("Erro interno", original)

		assert.ErrorIs(t, err, original)
		assert.Contains(t, err.Error(), "Erro interno")
		assert.Contains(t, err.Error(), "falha de disco")
	})

	t.Run("constructors map to the expected status", func(t *testing.T) {
		casos := []struct {
			err    error
			status int
		}{
			{apierrors.NotFound("x", nil), http.StatusNotFound},
			{apierrors.BadRequest("x", nil), http.StatusBadRequest},
			{apierrors.Unauthorized("x", nil), http.StatusUnauthorized},
			{apierrors.Forbidden("x", nil), http.StatusForbidden},
			{apierrors.Conflict("x", nil), http.StatusBadRequest},
			{apierrors.InternalServer("x", nil), http.StatusInternalServerError},
		}
		for _, caso := range casos {
			assert.Equal(t, caso.status, apierrors.HTTPStatus(caso.err))
		}
	})

	t.Run("unknown errors answer 500", func(t *testing.T) {
		err := stderrors.New("qualquer coisa")
		assert.Equal(t, http.StatusInternalServerError, apierrors.HTTPStatus(err))
		assert.Equal(t, "qualquer coisa", apierrors.Mensagem(err))
	})

	t.Run("status survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("contexto: %w", apierrors.NotFound("Denúncia não encontrada", nil))
		assert.Equal(t, http.StatusNotFound, apierrors.HTTPStatus(err))
		assert.Equal(t, "Denúncia não encontrada", apierrors.Mensagem(err))
	})
}

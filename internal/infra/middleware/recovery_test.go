package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/middleware"
	"github.com/ouvidoria/plataforma-denuncias/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	t.Run("panicking handler answers the generic 500", func(t *testing.T) {
		m := middleware.NewRecoveryMiddleware(testutils.TestLogger(t))
		router := testutils.SetupTestRouter(t)
		router.Use(m.Recovery())
		router.GET("/quebra", func(c *gin.Context) {
			panic("estado inesperado")
		})

		resp := testutils.MakeRequest(t, router, "GET", "/quebra", nil, nil)
		testutils.RequireHTTPStatus(t, resp, http.StatusInternalServerError)
		assert.Contains(t, resp.Body.String(), "Erro interno do servidor")
		assert.NotContains(t, resp.Body.String(), "estado inesperado")
	})

	t.Run("panic after authentication still answers 500", func(t *testing.T) {
		m := middleware.NewRecoveryMiddleware(testutils.TestLogger(t))
		router := testutils.SetupTestRouter(t)
		router.Use(m.Recovery())
		router.GET("/quebra", func(c *gin.Context) {
			c.Set(middleware.ContextSessao, &session.Data{UsuarioID: "id-1", Nome: "Ana"})
			panic("falha na triagem")
		})

		resp := testutils.MakeRequest(t, router, "GET", "/quebra", nil, nil)
		testutils.RequireHTTPStatus(t, resp, http.StatusInternalServerError)
		assert.Contains(t, resp.Body.String(), "erro")
	})
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware converte pânicos em respostas 500 controladas
type RecoveryMiddleware struct {
	logger *zap.Logger
}

// NewRecoveryMiddleware cria um novo middleware de recuperação
func NewRecoveryMiddleware(logger *zap.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logger: logger,
	}
}

// Recovery intercepta pânicos de handlers e responde o 500 genérico da API.
// Quando a requisição já passou pela autenticação, o usuário da sessão entra
// no log para correlacionar o pânico com a operação de triagem em curso.
func (m *RecoveryMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				campos := []zap.Field{
					zap.Any("panico", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("client_ip", c.ClientIP()),
					zap.ByteString("stack", debug.Stack()),
				}
				if sessao := SessionFromContext(c); sessao != nil {
					campos = append(campos, zap.String("usuario_id", sessao.UsuarioID))
				}
				m.logger.Error("Pânico recuperado durante a requisição", campos...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"erro": "Erro interno do servidor",
				})
			}
		}()

		c.Next()
	}
}

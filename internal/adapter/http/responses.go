package http

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// respondError converte um erro da aplicação na resposta JSON {"erro": ...}
// com o status correspondente. Erros não mapeados viram 500 e são logados.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apierrors.HTTPStatus(err)
	if status >= 500 {
		logger.Error("erro interno ao atender requisição",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err))
		c.JSON(status, gin.H{"erro": "Erro interno do servidor"})
		return
	}
	c.JSON(status, gin.H{"erro": apierrors.Mensagem(err)})
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"go.uber.org/zap"
)

// Chaves usadas no contexto do Gin para a sessão corrente.
const (
	ContextSessao      = "sessao"
	ContextSessaoToken = "sessao_token"
)

// AuthMiddleware autoriza requisições a partir do cookie de sessão
type AuthMiddleware struct {
	store      session.Store
	cookieName string
	logger     *zap.Logger
}

// NewAuthMiddleware cria uma nova instância do middleware de autenticação
func NewAuthMiddleware(store session.Store, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		store:      store,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Authenticate exige uma sessão válida (qualquer perfil)
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Não autenticado"})
		return
	}

	data, err := m.store.Get(c.Request.Context(), token)
	if err != nil {
		m.logger.Error("Falha ao consultar sessão", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao consultar sessão"})
		return
	}
	if data == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "Não autenticado"})
		return
	}

	c.Set(ContextSessao, data)
	c.Set(ContextSessaoToken, token)
}

// AuthenticateAdmin exige uma sessão válida com perfil Admin. Sessão ausente
// e perfil insuficiente recebem a mesma resposta 403.
func (m *AuthMiddleware) AuthenticateAdmin(c *gin.Context) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": "Acesso negado"})
		return
	}

	data, err := m.store.Get(c.Request.Context(), token)
	if err != nil {
		m.logger.Error("Falha ao consultar sessão", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao consultar sessão"})
		return
	}
	if data == nil || data.Perfil != model.PerfilAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": "Acesso negado"})
		return
	}

	c.Set(ContextSessao, data)
	c.Set(ContextSessaoToken, token)
}

// SessionFromContext devolve a sessão corrente, ou nil quando não há
func SessionFromContext(c *gin.Context) *session.Data {
	value, exists := c.Get(ContextSessao)
	if !exists {
		return nil
	}
	data, ok := value.(*session.Data)
	if !ok {
		return nil
	}
	return data
}

// TokenFromContext devolve o token da sessão corrente, ou vazio
func TokenFromContext(c *gin.Context) string {
	value, exists := c.Get(ContextSessaoToken)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}

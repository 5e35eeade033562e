package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/auth"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/middleware"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// CookieConfig define como o cookie de sessão é emitido
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler expõe login, logout e a consulta da sessão atual
type AuthHandler struct {
	service *auth.Service
	cookie  CookieConfig
	logger  *zap.Logger
}

// NewAuthHandler cria um novo handler de autenticação
func NewAuthHandler(service *auth.Service, cookie CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// Login autentica um usuário da equipe e abre a sessão via cookie HttpOnly
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}
	if req.Username == "" || req.Senha == "" {
		respondError(c, h.logger, apierrors.BadRequest("Username e senha são obrigatórios", nil))
		return
	}

	usuario, token, err := h.service.Login(c.Request.Context(), req.Username, req.Senha)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Login realizado com sucesso",
		"usuario":  usuario,
	})
}

// Logout encerra a sessão atual e expira o cookie. Sem sessão válida a
// operação continua respondendo sucesso.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err == nil && token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.logger.Warn("falha ao destruir sessão no logout", zap.Error(err))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{"mensagem": "Logout realizado com sucesso"})
}

// Me devolve o usuário da sessão atual
func (h *AuthHandler) Me(c *gin.Context) {
	data := middleware.SessionFromContext(c)

	usuario, err := h.service.CurrentUser(c.Request.Context(), data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

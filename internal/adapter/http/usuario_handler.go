package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/usuario"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/middleware"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// UsuarioHandler expõe a gestão de contas da equipe (rotas de Admin)
type UsuarioHandler struct {
	service *usuario.Service
	logger  *zap.Logger
}

// NewUsuarioHandler cria um novo handler de usuários
func NewUsuarioHandler(service *usuario.Service, logger *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		service: service,
		logger:  logger,
	}
}

type criarUsuarioRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Nome     string `json:"nome"`
	Perfil   string `json:"perfil"`
	Email    string `json:"email"`
}

// Criar registra uma nova conta da equipe
func (h *UsuarioHandler) Criar(c *gin.Context) {
	var req criarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	u, err := h.service.Criar(c.Request.Context(), usuario.CriarInput{
		Username: req.Username,
		Senha:    req.Senha,
		Nome:     req.Nome,
		Perfil:   req.Perfil,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem": "Usuário criado com sucesso",
		"usuario":  u,
	})
}

// Listar devolve todas as contas da equipe
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.service.Listar(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

type atualizarUsuarioRequest struct {
	Nome   *string `json:"nome"`
	Email  *string `json:"email"`
	Perfil *string `json:"perfil"`
	Ativo  *bool   `json:"ativo"`
	Senha  *string `json:"senha"`
}

// Atualizar aplica mutações parciais a uma conta existente
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	var req atualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	u, err := h.service.Atualizar(c.Request.Context(), c.Param("id"), usuario.AtualizarInput{
		Nome:   req.Nome,
		Email:  req.Email,
		Perfil: req.Perfil,
		Ativo:  req.Ativo,
		Senha:  req.Senha,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Usuário atualizado com sucesso",
		"usuario":  u,
	})
}

// Remover apaga uma conta. A conta da própria sessão não pode ser removida.
func (h *UsuarioHandler) Remover(c *gin.Context) {
	sessao := middleware.SessionFromContext(c)
	if sessao == nil {
		respondError(c, h.logger, apierrors.Unauthorized("Não autenticado", nil))
		return
	}

	if err := h.service.Remover(c.Request.Context(), c.Param("id"), sessao.UsuarioID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Usuário deletado com sucesso"})
}

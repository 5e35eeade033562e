package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/sugestao"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// SugestaoHandler expõe as operações de sugestão via HTTP
type SugestaoHandler struct {
	service *sugestao.Service
	logger  *zap.Logger
}

// NewSugestaoHandler cria um novo handler de sugestões
func NewSugestaoHandler(service *sugestao.Service, logger *zap.Logger) *SugestaoHandler {
	return &SugestaoHandler{
		service: service,
		logger:  logger,
	}
}

type criarSugestaoRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Categoria string `json:"categoria"`
}

// Criar registra uma sugestão anônima e devolve o protocolo de acompanhamento
func (h *SugestaoHandler) Criar(c *gin.Context) {
	var req criarSugestaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	s, err := h.service.Criar(c.Request.Context(), sugestao.CriarInput{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Categoria: req.Categoria,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem":  "Sugestão registrada com sucesso",
		"protocolo": s.Protocolo,
	})
}

// BuscarPorProtocolo é o acompanhamento anônimo pelo código de protocolo
func (h *SugestaoHandler) BuscarPorProtocolo(c *gin.Context) {
	s, err := h.service.BuscarPorProtocolo(c.Request.Context(), c.Param("protocolo"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Listar devolve todas as sugestões, da mais recente para a mais antiga
func (h *SugestaoHandler) Listar(c *gin.Context) {
	sugestoes, err := h.service.Listar(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sugestoes)
}

type atualizarSugestaoRequest struct {
	Status   *string `json:"status"`
	Resposta *string `json:"resposta"`
}

// Atualizar muda o status e/ou a resposta de uma sugestão
func (h *SugestaoHandler) Atualizar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.logger, apierrors.BadRequest("ID inválido", err))
		return
	}

	var req atualizarSugestaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	s, err := h.service.Atualizar(c.Request.Context(), uint(id), sugestao.AtualizarInput{
		Status:   req.Status,
		Resposta: req.Resposta,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Sugestão atualizada com sucesso",
		"sugestao": s,
	})
}

// Remover apaga uma sugestão (apenas Admin)
func (h *SugestaoHandler) Remover(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.logger, apierrors.BadRequest("ID inválido", err))
		return
	}

	if err := h.service.Remover(c.Request.Context(), uint(id)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Sugestão deletada com sucesso"})
}

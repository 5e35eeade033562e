package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/denuncia"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// DenunciaHandler expõe as operações de denúncia via HTTP
type DenunciaHandler struct {
	service *denuncia.Service
	logger  *zap.Logger
}

// NewDenunciaHandler cria um novo handler de denúncias
func NewDenunciaHandler(service *denuncia.Service, logger *zap.Logger) *DenunciaHandler {
	return &DenunciaHandler{
		service: service,
		logger:  logger,
	}
}

type criarDenunciaRequest struct {
	Categoria         string `json:"categoria"`
	Descricao         string `json:"descricao"`
	Local             string `json:"local"`
	DataIncidente     string `json:"data_incidente"`
	PessoasEnvolvidas string `json:"pessoas_envolvidas"`
	Urgencia          string `json:"urgencia"`
}

// Criar registra uma denúncia anônima e devolve o protocolo de acompanhamento
func (h *DenunciaHandler) Criar(c *gin.Context) {
	var req criarDenunciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	d, err := h.service.Criar(c.Request.Context(), denuncia.CriarInput{
		Categoria:         req.Categoria,
		Descricao:         req.Descricao,
		Local:             req.Local,
		DataIncidente:     req.DataIncidente,
		PessoasEnvolvidas: req.PessoasEnvolvidas,
		Urgencia:          req.Urgencia,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem":  "Denúncia registrada com sucesso",
		"protocolo": d.Protocolo,
	})
}

// BuscarPorProtocolo é o acompanhamento anônimo pelo código de protocolo
func (h *DenunciaHandler) BuscarPorProtocolo(c *gin.Context) {
	d, err := h.service.BuscarPorProtocolo(c.Request.Context(), c.Param("protocolo"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Listar devolve as denúncias filtradas por categoria, status e urgência
func (h *DenunciaHandler) Listar(c *gin.Context) {
	filtro := repository.FiltroDenuncias{
		Categoria: c.Query("categoria"),
		Status:    c.Query("status"),
		Urgencia:  c.Query("urgencia"),
	}

	denuncias, err := h.service.Listar(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, denuncias)
}

type atualizarDenunciaRequest struct {
	Status   *string `json:"status"`
	NovaAcao *string `json:"nova_acao"`
}

// Atualizar muda o status e/ou anexa uma ação ao histórico da denúncia
func (h *DenunciaHandler) Atualizar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.logger, apierrors.BadRequest("ID inválido", err))
		return
	}

	var req atualizarDenunciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apierrors.BadRequest("Dados inválidos", err))
		return
	}

	d, err := h.service.Atualizar(c.Request.Context(), uint(id), denuncia.AtualizarInput{
		Status:   req.Status,
		NovaAcao: req.NovaAcao,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Denúncia atualizada com sucesso",
		"denuncia": d,
	})
}

// Remover apaga uma denúncia (apenas Admin)
func (h *DenunciaHandler) Remover(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, h.logger, apierrors.BadRequest("ID inválido", err))
		return
	}

	if err := h.service.Remover(c.Request.Context(), uint(id)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Denúncia deletada com sucesso"})
}

// Relatorio devolve as contagens agregadas calculadas na hora da consulta
func (h *DenunciaHandler) Relatorio(c *gin.Context) {
	rel, err := h.service.Relatorio(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rel)
}

package sugestao

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/protocol"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/metrics"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

const maxInsercoes = 3

// Service implementa as operações de sugestão
type Service struct {
	repo    repository.SugestaoRepository
	logger  *zap.Logger
	metrics *metrics.APIMetrics
}

// NewService cria um novo serviço de sugestões
func NewService(repo repository.SugestaoRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SetMetrics configura as métricas do serviço
func (s *Service) SetMetrics(m *metrics.APIMetrics) {
	s.metrics = m
}

// CriarInput carrega os campos de uma nova sugestão anônima
type CriarInput struct {
	Titulo    string
	Descricao string
	Categoria string
}

// Criar registra uma sugestão anônima com um protocolo único (prefixo SUG),
// com o mesmo tratamento de colisão usado para denúncias.
func (s *Service) Criar(ctx context.Context, input CriarInput) (*model.Sugestao, error) {
	if input.Titulo == "" || input.Descricao == "" {
		return nil, apierrors.BadRequest("Título e descrição são obrigatórios", nil)
	}

	categoria := input.Categoria
	if categoria == "" {
		categoria = model.CategoriaGeral
	}

	for tentativa := 0; tentativa < maxInsercoes; tentativa++ {
		codigo, err := protocol.GenerateUnique(ctx, protocol.PrefixoSugestao, s.repo.ExistsByProtocolo)
		if err != nil {
			if errors.Is(err, protocol.ErrTentativasEsgotadas) {
				return nil, apierrors.Conflict("Não foi possível gerar um protocolo único, tente novamente", err)
			}
			return nil, err
		}

		nova := &model.Sugestao{
			Protocolo: codigo,
			Titulo:    input.Titulo,
			Descricao: input.Descricao,
			Categoria: categoria,
			Status:    model.StatusRecebida,
		}

		err = s.repo.Create(ctx, nova)
		if err == nil {
			s.logger.Info("Sugestão registrada", zap.String("protocolo", nova.Protocolo))
			if s.metrics != nil {
				s.metrics.SugestaoRegistrada()
			}
			return nova, nil
		}

		if errors.Is(err, repository.ErrProtocoloDuplicado) {
			s.logger.Warn("Colisão de protocolo no insert, gerando novo código",
				zap.String("protocolo", codigo))
			if s.metrics != nil {
				s.metrics.ProtocoloColisao()
			}
			continue
		}

		return nil, err
	}

	return nil, apierrors.Conflict("Não foi possível gerar um protocolo único, tente novamente", nil)
}

// BuscarPorProtocolo busca uma sugestão pelo protocolo (caminho anônimo)
func (s *Service) BuscarPorProtocolo(ctx context.Context, protocolo string) (*model.Sugestao, error) {
	sug, err := s.repo.GetByProtocolo(ctx, protocolo)
	if err != nil {
		if errors.Is(err, repository.ErrSugestaoNotFound) {
			return nil, apierrors.NotFound("Sugestão não encontrada", err)
		}
		return nil, err
	}
	return sug, nil
}

// Listar retorna todas as sugestões, da mais recente para a mais antiga
func (s *Service) Listar(ctx context.Context) ([]*model.Sugestao, error) {
	return s.repo.List(ctx)
}

// AtualizarInput carrega as mutações aceitas: status e/ou resposta
type AtualizarInput struct {
	Status   *string
	Resposta *string
}

// Atualizar muda status e/ou resposta de uma sugestão
func (s *Service) Atualizar(ctx context.Context, id uint, input AtualizarInput) (*model.Sugestao, error) {
	sug, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSugestaoNotFound) {
			return nil, apierrors.NotFound("Sugestão não encontrada", err)
		}
		return nil, err
	}

	if input.Status != nil {
		sug.Status = *input.Status
	}
	if input.Resposta != nil {
		sug.Resposta = *input.Resposta
	}

	if err := s.repo.Update(ctx, sug); err != nil {
		if errors.Is(err, repository.ErrSugestaoNotFound) {
			return nil, apierrors.NotFound("Sugestão não encontrada", err)
		}
		return nil, err
	}

	return sug, nil
}

// Remover apaga uma sugestão pelo id
func (s *Service) Remover(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSugestaoNotFound) {
			return apierrors.NotFound("Sugestão não encontrada", err)
		}
		return err
	}
	return nil
}

package denuncia

import (
	"context"
	"errors"
	"time"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/protocol"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/ouvidoria/plataforma-denuncias/internal/infra/metrics"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
)

// maxInsercoes limita quantas vezes o insert é repetido quando o índice único
// de protocolo rejeita um código escolhido simultaneamente por outra criação.
const maxInsercoes = 3

// Service implementa as operações de denúncia
type Service struct {
	repo    repository.DenunciaRepository
	logger  *zap.Logger
	metrics *metrics.APIMetrics
}

// NewService cria um novo serviço de denúncias
func NewService(repo repository.DenunciaRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SetMetrics configura as métricas do serviço
func (s *Service) SetMetrics(m *metrics.APIMetrics) {
	s.metrics = m
}

// CriarInput carrega os campos de uma nova denúncia anônima
type CriarInput struct {
	Categoria         string
	Descricao         string
	Urgencia          string
	Local             string
	DataIncidente     string
	PessoasEnvolvidas string
}

// Criar registra uma denúncia anônima com um protocolo único. A verificação
// de existência antes do insert é uma otimização; a colisão real é detectada
// pelo índice único e resolvida gerando um novo código.
func (s *Service) Criar(ctx context.Context, input CriarInput) (*model.Denuncia, error) {
	if input.Categoria == "" {
		return nil, apierrors.BadRequest("Campo categoria é obrigatório", nil)
	}
	if input.Descricao == "" {
		return nil, apierrors.BadRequest("Campo descricao é obrigatório", nil)
	}
	if input.Urgencia == "" {
		return nil, apierrors.BadRequest("Campo urgencia é obrigatório", nil)
	}

	for tentativa := 0; tentativa < maxInsercoes; tentativa++ {
		codigo, err := protocol.GenerateUnique(ctx, protocol.PrefixoDenuncia, s.repo.ExistsByProtocolo)
		if err != nil {
			if errors.Is(err, protocol.ErrTentativasEsgotadas) {
				return nil, apierrors.Conflict("Não foi possível gerar um protocolo único, tente novamente", err)
			}
			return nil, err
		}

		nova := &model.Denuncia{
			Protocolo:         codigo,
			Categoria:         input.Categoria,
			Descricao:         input.Descricao,
			Local:             input.Local,
			DataIncidente:     input.DataIncidente,
			PessoasEnvolvidas: input.PessoasEnvolvidas,
			Urgencia:          input.Urgencia,
			Status:            model.StatusPendente,
			Acoes:             model.HistoricoAcoes{},
		}

		err = s.repo.Create(ctx, nova)
		if err == nil {
			s.logger.Info("Denúncia registrada",
				zap.String("protocolo", nova.Protocolo),
				zap.String("urgencia", nova.Urgencia))
			if s.metrics != nil {
				s.metrics.DenunciaRegistrada(nova.Urgencia)
			}
			return nova, nil
		}

		if errors.Is(err, repository.ErrProtocoloDuplicado) {
			// Outra criação concorrente levou o mesmo código; gerar outro.
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

// BuscarPorProtocolo é o caminho de acompanhamento anônimo. Protocolo
// inexistente ou malformado produz a mesma resposta de não encontrado.
func (s *Service) BuscarPorProtocolo(ctx context.Context, protocolo string) (*model.Denuncia, error) {
	d, err := s.repo.GetByProtocolo(ctx, protocolo)
	if err != nil {
		if errors.Is(err, repository.ErrDenunciaNotFound) {
			return nil, apierrors.NotFound("Denúncia não encontrada", err)
		}
		return nil, err
	}
	return d, nil
}

// Listar retorna denúncias filtradas, da mais recente para a mais antiga
func (s *Service) Listar(ctx context.Context, filtro repository.FiltroDenuncias) ([]*model.Denuncia, error) {
	return s.repo.List(ctx, filtro)
}

// AtualizarInput carrega as mutações aceitas: status e/ou uma nova ação.
// Os dois campos são independentes; nenhuma máquina de transição é imposta
// sobre o status.
type AtualizarInput struct {
	Status   *string
	NovaAcao *string
}

// Atualizar muda o status e/ou anexa uma ação ao histórico. O histórico é
// apenas de inserção: a entrada nova vai sempre para o fim e nenhuma entrada
// anterior é tocada.
func (s *Service) Atualizar(ctx context.Context, id uint, input AtualizarInput) (*model.Denuncia, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDenunciaNotFound) {
			return nil, apierrors.NotFound("Denúncia não encontrada", err)
		}
		return nil, err
	}

	if input.Status != nil {
		d.Status = *input.Status
	}

	if input.NovaAcao != nil && *input.NovaAcao != "" {
		d.Acoes = append(d.Acoes, model.Acao{
			Data: time.Now(),
			Acao: *input.NovaAcao,
		})
	}

	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDenunciaNotFound) {
			return nil, apierrors.NotFound("Denúncia não encontrada", err)
		}
		return nil, err
	}

	return d, nil
}

// Remover apaga uma denúncia pelo id
func (s *Service) Remover(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDenunciaNotFound) {
			return apierrors.NotFound("Denúncia não encontrada", err)
		}
		return err
	}
	return nil
}

// Relatorio agrega as contagens de denúncias no momento da consulta
func (s *Service) Relatorio(ctx context.Context) (*model.Relatorio, error) {
	return s.repo.Report(ctx)
}

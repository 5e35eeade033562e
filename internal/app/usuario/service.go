package usuario

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service implementa a gestão de contas da equipe (operações de Admin)
type Service struct {
	repo       repository.UsuarioRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewService cria um novo serviço de usuários
func NewService(repo repository.UsuarioRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// SetBcryptCost configura o custo do hash de senhas. Valores fora da faixa
// aceita pelo bcrypt voltam ao custo padrão.
func (s *Service) SetBcryptCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	s.bcryptCost = cost
}

// CriarInput carrega os campos de uma nova conta
type CriarInput struct {
	Username string
	Senha    string
	Nome     string
	Perfil   string
	Email    string
}

// Criar registra uma nova conta da equipe. A senha entra apenas como hash
// bcrypt; o texto plano não é armazenado nem registrado em log.
func (s *Service) Criar(ctx context.Context, input CriarInput) (*model.Usuario, error) {
	if input.Username == "" || input.Senha == "" || input.Nome == "" {
		return nil, apierrors.BadRequest("Username, senha e nome são obrigatórios", nil)
	}

	perfil := input.Perfil
	if perfil == "" {
		perfil = model.PerfilModerador
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), s.bcryptCost)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha", zap.Error(err))
		return nil, err
	}

	novo := &model.Usuario{
		Username: input.Username,
		Senha:    string(hash),
		Nome:     input.Nome,
		Perfil:   perfil,
		Ativo:    true,
	}
	if input.Email != "" {
		novo.Email = &input.Email
	}

	if err := s.repo.Create(ctx, novo); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameDuplicado):
			return nil, apierrors.Conflict("Username já existe", err)
		case errors.Is(err, repository.ErrEmailDuplicado):
			return nil, apierrors.Conflict("Email já está em uso", err)
		}
		return nil, err
	}

	s.logger.Info("Usuário criado",
		zap.String("id", novo.ID),
		zap.String("username", novo.Username),
		zap.String("perfil", novo.Perfil))
	return novo, nil
}

// Listar retorna todos os usuários, do mais recente para o mais antigo
func (s *Service) Listar(ctx context.Context) ([]*model.Usuario, error) {
	return s.repo.List(ctx)
}

// AtualizarInput carrega as mutações parciais de uma conta. Campos nil não
// são alterados; senha não vazia é re-hasheada.
type AtualizarInput struct {
	Nome   *string
	Email  *string
	Perfil *string
	Ativo  *bool
	Senha  *string
}

// Atualizar aplica mutações parciais a uma conta existente
func (s *Service) Atualizar(ctx context.Context, id string, input AtualizarInput) (*model.Usuario, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return nil, apierrors.NotFound("Usuário não encontrado", err)
		}
		return nil, err
	}

	if input.Nome != nil {
		usuario.Nome = *input.Nome
	}
	if input.Email != nil {
		if *input.Email == "" {
			usuario.Email = nil
		} else {
			usuario.Email = input.Email
		}
	}
	if input.Perfil != nil {
		usuario.Perfil = *input.Perfil
	}
	if input.Ativo != nil {
		usuario.Ativo = *input.Ativo
	}
	if input.Senha != nil && *input.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Senha), s.bcryptCost)
		if err != nil {
			s.logger.Error("Falha ao gerar hash da senha", zap.Error(err))
			return nil, err
		}
		usuario.Senha = string(hash)
	}

	if err := s.repo.Update(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrEmailDuplicado) {
			return nil, apierrors.Conflict("Email já está em uso", err)
		}
		return nil, err
	}

	return usuario, nil
}

// Remover apaga uma conta. Um Admin não pode remover a própria conta da
// sessão atual: a operação falha e o registro permanece intacto.
func (s *Service) Remover(ctx context.Context, id string, solicitanteID string) error {
	if id == solicitanteID {
		return apierrors.Forbidden("Não é possível deletar seu próprio usuário", nil)
	}

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return apierrors.NotFound("Usuário não encontrado", err)
		}
		return err
	}

	s.logger.Info("Usuário removido", zap.String("id", id))
	return nil
}

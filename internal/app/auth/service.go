package auth

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service gerencia autenticação e sessões da equipe
type Service struct {
	usuarios repository.UsuarioRepository
	sessions session.Store
	logger   *zap.Logger
}

// NewService cria um novo serviço de autenticação
func NewService(usuarios repository.UsuarioRepository, sessions session.Store, logger *zap.Logger) *Service {
	return &Service{
		usuarios: usuarios,
		sessions: sessions,
		logger:   logger,
	}
}

// Login autentica um usuário e abre uma sessão. Credenciais inválidas e
// usuário inexistente produzem o mesmo erro; conta inativa é recusada mesmo
// com a senha correta.
func (s *Service) Login(ctx context.Context, username, senha string) (*model.Usuario, string, error) {
	usuario, err := s.usuarios.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			s.logger.Warn("Falha na autenticação: usuário desconhecido", zap.String("username", username))
			return nil, "", apierrors.Unauthorized("Credenciais inválidas", nil)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		s.logger.Warn("Falha na autenticação: senha incorreta", zap.String("username", username))
		return nil, "", apierrors.Unauthorized("Credenciais inválidas", nil)
	}

	if !usuario.Ativo {
		s.logger.Warn("Falha na autenticação: usuário inativo", zap.String("username", username))
		return nil, "", apierrors.Forbidden("Usuário inativo", nil)
	}

	token, err := s.sessions.Create(ctx, session.Data{
		UsuarioID: usuario.ID,
		Nome:      usuario.Nome,
		Perfil:    usuario.Perfil,
	})
	if err != nil {
		s.logger.Error("Falha ao criar sessão", zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("Login bem-sucedido",
		zap.String("usuario_id", usuario.ID),
		zap.String("perfil", usuario.Perfil))
	return usuario, token, nil
}

// Logout encerra a sessão imediata e incondicionalmente
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser devolve o usuário da sessão informada
func (s *Service) CurrentUser(ctx context.Context, data *session.Data) (*model.Usuario, error) {
	if data == nil {
		return nil, apierrors.Unauthorized("Não autenticado", nil)
	}
	usuario, err := s.usuarios.GetByID(ctx, data.UsuarioID)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return nil, apierrors.NotFound("Usuário não encontrado", err)
		}
		return nil, err
	}
	return usuario, nil
}

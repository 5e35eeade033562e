package auth_test

import (
	"testing"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/auth"
	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/ouvidoria/plataforma-denuncias/internal/mocks"
	"github.com/ouvidoria/plataforma-denuncias/internal/testutils"
	apierrors "github.com/ouvidoria/plataforma-denuncias/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func usuarioComSenha(t *testing.T, senha string) *model.Usuario {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Usuario{
		ID:       "11111111-1111-1111-1111-111111111111",
		Username: "maria",
		Senha:    string(hash),
		Nome:     "Maria Souza",
		Perfil:   model.PerfilModerador,
		Ativo:    true,
	}
}

func TestAuthService_Login(t *testing.T) {
	logger := testutils.TestLogger(t)

	t.Run("opens a session for valid credentials", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		u := usuarioComSenha(t, "segredo123")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(u, nil).Once()
		mockSessions.On("Create", mock.Anything, session.Data{
			UsuarioID: u.ID,
			Nome:      u.Nome,
			Perfil:    u.Perfil,
		}).Return("token-abc", nil).Once()

		usuario, token, err := service.Login(ctx, "maria", "segredo123")

		require.NoError(t, err)
		assert.Equal(t, u, usuario)
		assert.Equal(t, "token-abc", token)
		mockSessions.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user answer the same", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		u := usuarioComSenha(t, "segredo123")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(u, nil).Once()
		mockRepo.On("GetByUsername", mock.Anything, "fantasma").
			Return(nil, repository.ErrUsuarioNotFound).Once()

		_, _, errSenha := service.Login(ctx, "maria", "errada")
		_, _, errUsuario := service.Login(ctx, "fantasma", "qualquer")

		require.Error(t, errSenha)
		require.Error(t, errUsuario)
		assert.Equal(t, 401, apierrors.HTTPStatus(errSenha))
		assert.Equal(t, 401, apierrors.HTTPStatus(errUsuario))
		assert.Equal(t, apierrors.Mensagem(errSenha), apierrors.Mensagem(errUsuario))
		mockSessions.AssertNotCalled(t, "Create")
	})

	t.Run("refuses an inactive account even with the right password", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		u := usuarioComSenha(t, "segredo123")
		u.Ativo = false
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(u, nil).Once()

		_, _, err := service.Login(ctx, "maria", "segredo123")

		require.Error(t, err)
		assert.Equal(t, 403, apierrors.HTTPStatus(err))
		mockSessions.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Logout(t *testing.T) {
	logger := testutils.TestLogger(t)

	t.Run("destroys the session", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		mockSessions.On("Destroy", mock.Anything, "token-abc").Return(nil).Once()

		require.NoError(t, service.Logout(ctx, "token-abc"))
		mockSessions.AssertExpectations(t)
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		require.NoError(t, service.Logout(ctx, ""))
		mockSessions.AssertNotCalled(t, "Destroy")
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	logger := testutils.TestLogger(t)

	t.Run("loads the user behind the session", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		u := usuarioComSenha(t, "segredo123")
		mockRepo.On("GetByID", mock.Anything, u.ID).Return(u, nil).Once()

		usuario, err := service.CurrentUser(ctx, &session.Data{UsuarioID: u.ID})
		require.NoError(t, err)
		assert.Equal(t, u, usuario)
	})

	t.Run("nil session answers unauthorized", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUsuarioRepository)
		mockSessions := new(mocks.MockSessionStore)
		service := auth.NewService(mockRepo, mockSessions, logger)

		_, err := service.CurrentUser(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, 401, apierrors.HTTPStatus(err))
	})
}

package mocks

import (
	"context"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

// MockDenunciaRepository é um mock para a interface DenunciaRepository
type MockDenunciaRepository struct {
	mock.Mock
}

func (m *MockDenunciaRepository) Create(ctx context.Context, denuncia *model.Denuncia) error {
	args := m.Called(ctx, denuncia)
	return args.Error(0)
}

func (m *MockDenunciaRepository) ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error) {
	args := m.Called(ctx, protocolo)
	return args.Bool(0), args.Error(1)
}

func (m *MockDenunciaRepository) GetByProtocolo(ctx context.Context, protocolo string) (*model.Denuncia, error) {
	args := m.Called(ctx, protocolo)
	if d, ok := args.Get(0).(*model.Denuncia); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDenunciaRepository) GetByID(ctx context.Context, id uint) (*model.Denuncia, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Denuncia); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDenunciaRepository) List(ctx context.Context, filtro repository.FiltroDenuncias) ([]*model.Denuncia, error) {
	args := m.Called(ctx, filtro)
	if d, ok := args.Get(0).([]*model.Denuncia); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDenunciaRepository) Update(ctx context.Context, denuncia *model.Denuncia) error {
	args := m.Called(ctx, denuncia)
	return args.Error(0)
}

func (m *MockDenunciaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDenunciaRepository) Report(ctx context.Context) (*model.Relatorio, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*model.Relatorio); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSugestaoRepository é um mock para a interface SugestaoRepository
type MockSugestaoRepository struct {
	mock.Mock
}

func (m *MockSugestaoRepository) Create(ctx context.Context, sugestao *model.Sugestao) error {
	args := m.Called(ctx, sugestao)
	return args.Error(0)
}

func (m *MockSugestaoRepository) ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error) {
	args := m.Called(ctx, protocolo)
	return args.Bool(0), args.Error(1)
}

func (m *MockSugestaoRepository) GetByProtocolo(ctx context.Context, protocolo string) (*model.Sugestao, error) {
	args := m.Called(ctx, protocolo)
	if s, ok := args.Get(0).(*model.Sugestao); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSugestaoRepository) GetByID(ctx context.Context, id uint) (*model.Sugestao, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.Sugestao); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSugestaoRepository) List(ctx context.Context) ([]*model.Sugestao, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]*model.Sugestao); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSugestaoRepository) Update(ctx context.Context, sugestao *model.Sugestao) error {
	args := m.Called(ctx, sugestao)
	return args.Error(0)
}

func (m *MockSugestaoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUsuarioRepository é um mock para a interface UsuarioRepository
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsuarioRepository) GetByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsuarioRepository) List(ctx context.Context) ([]*model.Usuario, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]*model.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, usuario *model.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/session"
	"github.com/stretchr/testify/mock"
)

// MockSessionStore é um mock para a interface session.Store
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, data session.Data) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*session.Data, error) {
	args := m.Called(ctx, token)
	if d, ok := args.Get(0).(*session.Data); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionStore) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

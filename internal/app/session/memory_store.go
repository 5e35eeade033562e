package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore implementa a interface Store em memória. Serve para
// desenvolvimento e testes; sessões não sobrevivem a um restart do processo.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore cria um armazenamento de sessões em memória com o TTL dado
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// Create registra uma nova sessão e retorna o token opaco
func (s *MemoryStore) Create(ctx context.Context, data Data) (string, error) {
	token := uuid.New().String()
	s.cache.SetDefault(token, data)
	return token, nil
}

// Get recupera a sessão pelo token
func (s *MemoryStore) Get(ctx context.Context, token string) (*Data, error) {
	value, found := s.cache.Get(token)
	if !found {
		return nil, nil
	}
	data, ok := value.(Data)
	if !ok {
		return nil, nil
	}
	return &data, nil
}

// Destroy encerra a sessão
func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}

// Ping verifica se o armazenamento está acessível
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

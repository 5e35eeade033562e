// Package session implementa o armazenamento de sessões da equipe, indexado
// por um token opaco entregue em cookie. A abstração permite trocar o
// mecanismo (Redis, memória, futuramente tokens assinados) sem tocar nos
// handlers.
package session

import (
	"context"
	"time"
)

// Data é o que a sessão registra sobre o usuário autenticado.
type Data struct {
	UsuarioID string `json:"usuario_id"`
	Nome      string `json:"nome"`
	Perfil    string `json:"perfil"`
}

// Store define a interface de armazenamento de sessões
type Store interface {
	// Create registra uma nova sessão e retorna o token opaco
	Create(ctx context.Context, data Data) (string, error)

	// Get recupera a sessão pelo token; retorna (nil, nil) quando o token é
	// desconhecido ou expirou
	Get(ctx context.Context, token string) (*Data, error)

	// Destroy encerra a sessão imediata e incondicionalmente
	Destroy(ctx context.Context, token string) error

	// Ping verifica se o armazenamento está acessível
	Ping(ctx context.Context) error
}

// DefaultTTL é a duração padrão de uma sessão quando a configuração não
// define outra.
const DefaultTTL = 24 * time.Hour

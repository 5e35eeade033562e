package repository

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
)

var (
	ErrDenunciaNotFound = errors.New("denúncia não encontrada")
	ErrSugestaoNotFound = errors.New("sugestão não encontrada")
	ErrUsuarioNotFound  = errors.New("usuário não encontrado")

	// ErrProtocoloDuplicado sinaliza violação do índice único de protocolo.
	// O serviço trata este erro gerando um novo código, nunca o repassa.
	ErrProtocoloDuplicado = errors.New("protocolo já existe")

	ErrUsernameDuplicado = errors.New("username já existe")
	ErrEmailDuplicado    = errors.New("email já está em uso")
)

// FiltroDenuncias contém os filtros opcionais de igualdade da listagem.
// Campos vazios não filtram.
type FiltroDenuncias struct {
	Categoria string
	Status    string
	Urgencia  string
}

// DenunciaRepository define a interface para armazenamento de denúncias
type DenunciaRepository interface {
	// Create persiste uma nova denúncia; retorna ErrProtocoloDuplicado em
	// caso de colisão de protocolo com uma criação concorrente.
	Create(ctx context.Context, denuncia *model.Denuncia) error

	// ExistsByProtocolo verifica se um protocolo já está em uso
	ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error)

	// GetByProtocolo obtém uma denúncia pelo protocolo (caminho anônimo)
	GetByProtocolo(ctx context.Context, protocolo string) (*model.Denuncia, error)

	// GetByID obtém uma denúncia pelo id interno
	GetByID(ctx context.Context, id uint) (*model.Denuncia, error)

	// List retorna denúncias filtradas, sempre da mais recente para a mais antiga
	List(ctx context.Context, filtro FiltroDenuncias) ([]*model.Denuncia, error)

	// Update persiste status e histórico de ações de uma denúncia existente
	Update(ctx context.Context, denuncia *model.Denuncia) error

	// Delete remove uma denúncia pelo id
	Delete(ctx context.Context, id uint) error

	// Report agrega total e contagens por status, categoria e urgência
	Report(ctx context.Context) (*model.Relatorio, error)
}

// SugestaoRepository define a interface para armazenamento de sugestões
type SugestaoRepository interface {
	Create(ctx context.Context, sugestao *model.Sugestao) error
	ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error)
	GetByProtocolo(ctx context.Context, protocolo string) (*model.Sugestao, error)
	GetByID(ctx context.Context, id uint) (*model.Sugestao, error)

	// List retorna todas as sugestões, da mais recente para a mais antiga
	List(ctx context.Context) ([]*model.Sugestao, error)

	Update(ctx context.Context, sugestao *model.Sugestao) error
	Delete(ctx context.Context, id uint) error
}

// UsuarioRepository define a interface para armazenamento de contas da equipe
type UsuarioRepository interface {
	// Create persiste um novo usuário; retorna ErrUsernameDuplicado ou
	// ErrEmailDuplicado quando os campos únicos já estão em uso.
	Create(ctx context.Context, usuario *model.Usuario) error

	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*model.Usuario, error)

	// List retorna todos os usuários, do mais recente para o mais antigo
	List(ctx context.Context) ([]*model.Usuario, error)

	Update(ctx context.Context, usuario *model.Usuario) error
	Delete(ctx context.Context, id string) error
}

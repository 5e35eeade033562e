package database

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UsuarioRepository implementa repository.UsuarioRepository sobre GORM
type UsuarioRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUsuarioRepository cria um novo repositório de usuários
func NewUsuarioRepository(db *gorm.DB, logger *zap.Logger) *UsuarioRepository {
	return &UsuarioRepository{db: db, logger: logger}
}

// Create persiste um novo usuário. Username e email são verificados dentro da
// transação para que o chamador receba o erro específico do campo em conflito;
// o índice único continua sendo a garantia final.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existente model.Usuario

		err := tx.Where("username = ?", usuario.Username).First(&existente).Error
		if err == nil {
			return repository.ErrUsernameDuplicado
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if usuario.Email != nil && *usuario.Email != "" {
			err = tx.Where("email = ?", *usuario.Email).First(&existente).Error
			if err == nil {
				return repository.ErrEmailDuplicado
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if err := tx.Create(usuario).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repository.ErrUsernameDuplicado
			}
			r.logger.Error("falha ao criar usuário", zap.Error(err))
			return err
		}
		return nil
	})
}

// GetByID obtém um usuário pelo id
func (r *UsuarioRepository) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUsuarioNotFound
		}
		return nil, err
	}
	return &usuario, nil
}

// GetByUsername obtém um usuário pelo username
func (r *UsuarioRepository) GetByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUsuarioNotFound
		}
		return nil, err
	}
	return &usuario, nil
}

// List retorna todos os usuários, do mais recente para o mais antigo
func (r *UsuarioRepository) List(ctx context.Context) ([]*model.Usuario, error) {
	var usuarios []*model.Usuario
	err := r.db.WithContext(ctx).Order("data_criacao DESC").Find(&usuarios).Error
	if err != nil {
		r.logger.Error("falha ao listar usuários", zap.Error(err))
		return nil, err
	}
	return usuarios, nil
}

// Update persiste o usuário completo (campos já validados pelo serviço)
func (r *UsuarioRepository) Update(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Save grava todos os campos, inclusive Ativo=false.
		if err := tx.Save(usuario).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repository.ErrEmailDuplicado
			}
			return err
		}
		return nil
	})
}

// Delete remove um usuário pelo id
func (r *UsuarioRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.Usuario{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrUsuarioNotFound
		}
		return nil
	})
}

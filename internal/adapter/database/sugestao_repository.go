package database

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SugestaoRepository implementa repository.SugestaoRepository sobre GORM
type SugestaoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSugestaoRepository cria um novo repositório de sugestões
func NewSugestaoRepository(db *gorm.DB, logger *zap.Logger) *SugestaoRepository {
	return &SugestaoRepository{db: db, logger: logger}
}

// Create persiste uma nova sugestão dentro de uma transação
func (r *SugestaoRepository) Create(ctx context.Context, sugestao *model.Sugestao) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sugestao).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrProtocoloDuplicado
		}
		r.logger.Error("falha ao criar sugestão", zap.Error(err))
		return err
	}
	return nil
}

// ExistsByProtocolo verifica se um protocolo já está em uso
func (r *SugestaoRepository) ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Sugestao{}).
		Where("protocolo = ?", protocolo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByProtocolo obtém uma sugestão pelo protocolo (caminho anônimo)
func (r *SugestaoRepository) GetByProtocolo(ctx context.Context, protocolo string) (*model.Sugestao, error) {
	var sugestao model.Sugestao
	err := r.db.WithContext(ctx).Where("protocolo = ?", protocolo).First(&sugestao).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSugestaoNotFound
		}
		return nil, err
	}
	return &sugestao, nil
}

// GetByID obtém uma sugestão pelo id interno
func (r *SugestaoRepository) GetByID(ctx context.Context, id uint) (*model.Sugestao, error) {
	var sugestao model.Sugestao
	err := r.db.WithContext(ctx).First(&sugestao, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSugestaoNotFound
		}
		return nil, err
	}
	return &sugestao, nil
}

// List retorna todas as sugestões, da mais recente para a mais antiga
func (r *SugestaoRepository) List(ctx context.Context) ([]*model.Sugestao, error) {
	var sugestoes []*model.Sugestao
	err := r.db.WithContext(ctx).Order("data_criacao DESC").Find(&sugestoes).Error
	if err != nil {
		r.logger.Error("falha ao listar sugestões", zap.Error(err))
		return nil, err
	}
	return sugestoes, nil
}

// Update persiste status e resposta de uma sugestão existente
func (r *SugestaoRepository) Update(ctx context.Context, sugestao *model.Sugestao) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Sugestao{}).
			Where("id = ?", sugestao.ID).
			Updates(map[string]interface{}{
				"status":   sugestao.Status,
				"resposta": sugestao.Resposta,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrSugestaoNotFound
		}
		return nil
	})
}

// Delete remove uma sugestão pelo id
func (r *SugestaoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Sugestao{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrSugestaoNotFound
		}
		return nil
	})
}

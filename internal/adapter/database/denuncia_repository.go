package database

import (
	"context"
	"errors"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"github.com/ouvidoria/plataforma-denuncias/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DenunciaRepository implementa repository.DenunciaRepository sobre GORM
type DenunciaRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDenunciaRepository cria um novo repositório de denúncias
func NewDenunciaRepository(db *gorm.DB, logger *zap.Logger) *DenunciaRepository {
	return &DenunciaRepository{db: db, logger: logger}
}

// Create persiste uma nova denúncia dentro de uma transação. Uma colisão de
// protocolo com outra criação concorrente vira ErrProtocoloDuplicado para o
// serviço tentar de novo com um código recém-gerado.
func (r *DenunciaRepository) Create(ctx context.Context, denuncia *model.Denuncia) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(denuncia).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrProtocoloDuplicado
		}
		r.logger.Error("falha ao criar denúncia", zap.Error(err))
		return err
	}
	return nil
}

// ExistsByProtocolo verifica se um protocolo já está em uso
func (r *DenunciaRepository) ExistsByProtocolo(ctx context.Context, protocolo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Denuncia{}).
		Where("protocolo = ?", protocolo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByProtocolo obtém uma denúncia pelo protocolo (caminho anônimo).
// Protocolo ausente ou malformado produz o mesmo ErrDenunciaNotFound.
func (r *DenunciaRepository) GetByProtocolo(ctx context.Context, protocolo string) (*model.Denuncia, error) {
	var denuncia model.Denuncia
	err := r.db.WithContext(ctx).Where("protocolo = ?", protocolo).First(&denuncia).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDenunciaNotFound
		}
		return nil, err
	}
	return &denuncia, nil
}

// GetByID obtém uma denúncia pelo id interno
func (r *DenunciaRepository) GetByID(ctx context.Context, id uint) (*model.Denuncia, error) {
	var denuncia model.Denuncia
	err := r.db.WithContext(ctx).First(&denuncia, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDenunciaNotFound
		}
		return nil, err
	}
	return &denuncia, nil
}

// List retorna denúncias com filtros opcionais de igualdade, sempre da mais
// recente para a mais antiga.
func (r *DenunciaRepository) List(ctx context.Context, filtro repository.FiltroDenuncias) ([]*model.Denuncia, error) {
	query := r.db.WithContext(ctx).Model(&model.Denuncia{})

	if filtro.Categoria != "" {
		query = query.Where("categoria = ?", filtro.Categoria)
	}
	if filtro.Status != "" {
		query = query.Where("status = ?", filtro.Status)
	}
	if filtro.Urgencia != "" {
		query = query.Where("urgencia = ?", filtro.Urgencia)
	}

	var denuncias []*model.Denuncia
	if err := query.Order("data_criacao DESC").Find(&denuncias).Error; err != nil {
		r.logger.Error("falha ao listar denúncias", zap.Error(err))
		return nil, err
	}
	return denuncias, nil
}

// Update persiste status e histórico de ações de uma denúncia existente
func (r *DenunciaRepository) Update(ctx context.Context, denuncia *model.Denuncia) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Somente os campos mutáveis; protocolo, categoria, descrição e
		// urgência são imutáveis após a criação.
		result := tx.Model(&model.Denuncia{}).
			Where("id = ?", denuncia.ID).
			Updates(map[string]interface{}{
				"status": denuncia.Status,
				"acoes":  denuncia.Acoes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrDenunciaNotFound
		}
		return nil
	})
}

// Delete remove uma denúncia pelo id
func (r *DenunciaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Denuncia{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrDenunciaNotFound
		}
		return nil
	})
}

// Report agrega total e contagens por status, categoria e urgência no momento
// da consulta; nada é materializado.
func (r *DenunciaRepository) Report(ctx context.Context) (*model.Relatorio, error) {
	relatorio := &model.Relatorio{
		PorStatus:    []model.ContagemStatus{},
		PorCategoria: []model.ContagemCategoria{},
		PorUrgencia:  []model.ContagemUrgencia{},
	}

	db := r.db.WithContext(ctx).Model(&model.Denuncia{})

	if err := db.Count(&relatorio.Total).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Denuncia{}).
		Select("status, count(*) as quantidade").
		Group("status").
		Scan(&relatorio.PorStatus).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Denuncia{}).
		Select("categoria, count(*) as quantidade").
		Group("categoria").
		Scan(&relatorio.PorCategoria).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&model.Denuncia{}).
		Select("urgencia, count(*) as quantidade").
		Group("urgencia").
		Scan(&relatorio.PorUrgencia).Error; err != nil {
		return nil, err
	}

	return relatorio, nil
}

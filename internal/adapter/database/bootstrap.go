package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ouvidoria/plataforma-denuncias/internal/domain/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin cria a conta admin padrão caso nenhum usuário com o
// username informado exista. O passo é idempotente: pode ser executado em
// todo start do processo sem produzir contas duplicadas, inclusive quando
// duas instâncias sobem ao mesmo tempo (o índice único de username resolve
// a corrida).
func (d *Database) EnsureDefaultAdmin(ctx context.Context, username, senha string, bcryptCost int, logger *zap.Logger) error {
	var existente model.Usuario
	err := d.db.WithContext(ctx).Where("username = ?", username).First(&existente).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("falha ao verificar admin padrão: %w", err)
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash da senha do admin padrão: %w", err)
	}

	email := username + "@escola.com"
	admin := model.Usuario{
		Username: username,
		Senha:    string(hash),
		Nome:     "Administrador",
		Perfil:   model.PerfilAdmin,
		Email:    &email,
		Ativo:    true,
	}

	if err := d.db.WithContext(ctx).Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Outra instância criou o admin entre a verificação e o insert.
			return nil
		}
		return fmt.Errorf("falha ao criar admin padrão: %w", err)
	}

	logger.Info("Usuário admin padrão criado",
		zap.String("username", username),
		zap.String("id", admin.ID))
	return nil
}

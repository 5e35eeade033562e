package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Perfis de acesso da equipe.
const (
	PerfilAdmin     = "Admin"
	PerfilModerador = "Moderador"
)

// Usuario representa uma conta da equipe (Admin ou Moderador).
// A senha é armazenada apenas como hash bcrypt e nunca é serializada.
type Usuario struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Senha       string    `gorm:"not null;size:200" json:"-"`
	Nome        string    `gorm:"not null;size:200" json:"nome"`
	Perfil      string    `gorm:"size:50;default:Moderador" json:"perfil"`
	Email       *string   `gorm:"uniqueIndex;size:200" json:"email"`
	Ativo       bool      `gorm:"default:true" json:"ativo"`
	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

// TableName define o nome da tabela
func (Usuario) TableName() string {
	return "usuarios"
}

// BeforeCreate gera um novo UUID para o usuário, se o ID ainda não foi definido.
func (u *Usuario) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// IsAdmin informa se a conta tem privilégio administrativo.
func (u *Usuario) IsAdmin() bool {
	return u != nil && u.Perfil == PerfilAdmin
}

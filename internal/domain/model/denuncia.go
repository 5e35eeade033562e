package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Acao é uma entrada do histórico de ações de uma denúncia.
type Acao struct {
	Data time.Time `json:"data"`
	Acao string    `json:"acao"`
}

// HistoricoAcoes é a sequência ordenada de ações registradas pela equipe.
// O histórico é apenas de inserção: entradas nunca são editadas ou removidas.
// Todo o histórico é serializado como um único valor JSON na coluna `acoes`.
type HistoricoAcoes []Acao

// Value serializa o histórico completo para persistência.
func (h HistoricoAcoes) Value() (driver.Value, error) {
	if h == nil {
		h = HistoricoAcoes{}
	}
	return json.Marshal(h)
}

// Scan desserializa o histórico a partir da coluna de texto.
func (h *HistoricoAcoes) Scan(value interface{}) error {
	if value == nil {
		*h = HistoricoAcoes{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*h = HistoricoAcoes{}
			return nil
		}
		return json.Unmarshal(v, h)
	case string:
		if v == "" {
			*h = HistoricoAcoes{}
			return nil
		}
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("tipo inesperado para histórico de ações: %T", value)
	}
}

// Denuncia representa uma denúncia anônima registrada por um cidadão.
// O protocolo é o único identificador exposto ao denunciante e é imutável
// após a criação, assim como categoria, descrição e urgência.
type Denuncia struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Protocolo         string         `gorm:"uniqueIndex;not null;size:50" json:"protocolo"`
	Categoria         string         `gorm:"not null;size:100" json:"categoria"`
	Descricao         string         `gorm:"not null;type:text" json:"descricao"`
	Local             string         `gorm:"size:200" json:"local"`
	DataIncidente     string         `gorm:"size:50" json:"data_incidente"`
	PessoasEnvolvidas string         `gorm:"type:text" json:"pessoas_envolvidas"`
	Urgencia          string         `gorm:"not null;size:20" json:"urgencia"`
	Status            string         `gorm:"size:50;default:Pendente" json:"status"`
	DataCriacao       time.Time      `gorm:"autoCreateTime" json:"data_criacao"`
	Acoes             HistoricoAcoes `gorm:"type:text" json:"acoes"`
}

// TableName define o nome da tabela
func (Denuncia) TableName() string {
	return "denuncias"
}

// StatusPendente é o status inicial de toda denúncia.
const StatusPendente = "Pendente"

// Relatorio agrega as contagens de denúncias calculadas no momento da consulta.
type Relatorio struct {
	Total        int64               `json:"total"`
	PorStatus    []ContagemStatus    `json:"por_status"`
	PorCategoria []ContagemCategoria `json:"por_categoria"`
	PorUrgencia  []ContagemUrgencia  `json:"por_urgencia"`
}

// ContagemStatus é a contagem de denúncias agrupadas por status.
type ContagemStatus struct {
	Status     string `json:"status"`
	Quantidade int64  `json:"quantidade"`
}

// ContagemCategoria é a contagem de denúncias agrupadas por categoria.
type ContagemCategoria struct {
	Categoria  string `json:"categoria"`
	Quantidade int64  `json:"quantidade"`
}

// ContagemUrgencia é a contagem de denúncias agrupadas por urgência.
type ContagemUrgencia struct {
	Urgencia   string `json:"urgencia"`
	Quantidade int64  `json:"quantidade"`
}

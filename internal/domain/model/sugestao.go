package model

import "time"

// Sugestao representa uma sugestão anônima. Diferente da denúncia, não carrega
// histórico de ações: a equipe responde em um único campo de texto livre.
type Sugestao struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Protocolo   string    `gorm:"uniqueIndex;not null;size:50" json:"protocolo"`
	Titulo      string    `gorm:"not null;size:200" json:"titulo"`
	Descricao   string    `gorm:"not null;type:text" json:"descricao"`
	Categoria   string    `gorm:"size:100;default:Geral" json:"categoria"`
	Status      string    `gorm:"size:50;default:Recebida" json:"status"`
	Resposta    string    `gorm:"type:text" json:"resposta"`
	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

// TableName define o nome da tabela
func (Sugestao) TableName() string {
	return "sugestoes"
}

// StatusRecebida é o status inicial de toda sugestão.
const StatusRecebida = "Recebida"

// CategoriaGeral é a categoria atribuída quando o cidadão não informa uma.
const CategoriaGeral = "Geral"

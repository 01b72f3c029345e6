package usuario

import (
	"github.com/pge-digital/api-afastamentos/internal/especializada"
)

// Usuario é o cadastro funcional consultado pelo núcleo de afastamentos.
// Este módulo só lê o usuário: vínculo, cargo e lotação alimentam as regras
// de elegibilidade de substituição.
type Usuario struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Nome            string `json:"nome" gorm:"size:200;not null"`
	Matricula       string `json:"matricula" gorm:"size:30;uniqueIndex;not null"`
	Email           string `json:"email" gorm:"size:200"`
	Senha           string `json:"-" gorm:"size:100"`
	Vinculo         string `json:"vinculo" gorm:"size:100"`
	Cargo           string `json:"cargo" gorm:"size:150"`
	EspecializadaID *uint  `json:"especializadaId"`

	Especializada *especializada.Especializada `json:"especializada,omitempty" gorm:"foreignKey:EspecializadaID"`
}

func (Usuario) TableName() string { return "usuario" }

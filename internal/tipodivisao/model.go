package tipodivisao

// TipoDivisaoAcervo define como o acervo do afastado é redistribuído.
type TipoDivisaoAcervo struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Nome string `json:"nome" gorm:"size:150;not null"`
}

func (TipoDivisaoAcervo) TableName() string { return "tipo_divisao_acervo" }

// NomeFinalProcesso é o tipo que habilita o código de PA final no vínculo
// de substituto.
const NomeFinalProcesso = "Final de Processo"

// PadraoID é o tipo de divisão aplicado quando a requisição não informa um.
const PadraoID uint = 1

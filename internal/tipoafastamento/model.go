package tipoafastamento

// TipoAfastamento classifica o motivo do afastamento (férias, licença etc.).
type TipoAfastamento struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Nome string `json:"nome" gorm:"size:150;not null"`
}

func (TipoAfastamento) TableName() string { return "tipo_afastamento" }

package especializada

// Especializada é a unidade/departamento onde o usuário está lotado.
type Especializada struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Nome  string `json:"nome" gorm:"size:200;not null"`
	Sigla string `json:"sigla" gorm:"size:20"`
}

func (Especializada) TableName() string { return "especializada" }

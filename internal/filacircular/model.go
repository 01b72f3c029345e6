package filacircular

// FilaCircular guarda a semente do rodízio de distribuição de processos
// entre os substitutos de um afastamento. UltimoElemento começa no menor id
// entre os substitutos informados na criação.
type FilaCircular struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	UltimoElemento uint `json:"ultimoElemento" gorm:"not null"`
}

func (FilaCircular) TableName() string { return "fila_circular" }

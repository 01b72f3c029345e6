package filacircular

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, f *FilaCircular) error
	BuscarPorID(db *gorm.DB, id uint) (*FilaCircular, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Criar persiste a fila imediatamente: o afastamento referencia o id gerado
// antes do próprio insert, por isso a fila é gravada em uma escrita própria.
func (r *repositoryImpl) Criar(db *gorm.DB, f *FilaCircular) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*FilaCircular, error) {
	var f FilaCircular
	err := db.First(&f, id).Error
	return &f, err
}

// Semear cria a fila para o conjunto inicial de substitutos, usando o menor
// id como semente do rodízio. Devolve nil sem criar nada quando a lista é
// vazia.
func Semear(db *gorm.DB, r Repository, substitutoIDs []uint) (*FilaCircular, error) {
	if len(substitutoIDs) == 0 {
		return nil, nil
	}

	menor := substitutoIDs[0]
	for _, id := range substitutoIDs[1:] {
		if id < menor {
			menor = id
		}
	}

	fila := &FilaCircular{UltimoElemento: menor}
	if err := r.Criar(db, fila); err != nil {
		return nil, err
	}
	return fila, nil
}

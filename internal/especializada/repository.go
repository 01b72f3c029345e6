package especializada

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, e *Especializada) error
	ListarTodas(db *gorm.DB) ([]Especializada, error)
	BuscarPorID(db *gorm.DB, id uint) (*Especializada, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Especializada) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Especializada) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Especializada, error) {
	var especializadas []Especializada
	err := db.Order("nome").Find(&especializadas).Error
	return especializadas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Especializada, error) {
	var e Especializada
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Especializada) error {
	var existente Especializada
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sigla = novosDados.Sigla

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Especializada{}, id).Error
}

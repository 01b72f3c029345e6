package tipodivisao

import "gorm.io/gorm"

type Repository interface {
	ListarTodos(db *gorm.DB) ([]TipoDivisaoAcervo, error)
	BuscarPorID(db *gorm.DB, id uint) (*TipoDivisaoAcervo, error)
	BuscarPorNome(db *gorm.DB, nome string) (*TipoDivisaoAcervo, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]TipoDivisaoAcervo, error) {
	var tipos []TipoDivisaoAcervo
	err := db.Order("nome").Find(&tipos).Error
	return tipos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*TipoDivisaoAcervo, error) {
	var t TipoDivisaoAcervo
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*TipoDivisaoAcervo, error) {
	var t TipoDivisaoAcervo
	err := db.Where("nome = ?", nome).First(&t).Error
	return &t, err
}

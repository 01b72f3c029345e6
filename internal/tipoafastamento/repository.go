package tipoafastamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, t *TipoAfastamento) error
	ListarTodos(db *gorm.DB) ([]TipoAfastamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*TipoAfastamento, error)
	Atualizar(db *gorm.DB, id uint, novoNome string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *TipoAfastamento) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]TipoAfastamento, error) {
	var tipos []TipoAfastamento
	err := db.Order("nome").Find(&tipos).Error
	return tipos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*TipoAfastamento, error) {
	var t TipoAfastamento
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novoNome string) error {
	return db.Model(&TipoAfastamento{}).Where("id = ?", id).Update("nome", novoNome).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&TipoAfastamento{}, id).Error
}

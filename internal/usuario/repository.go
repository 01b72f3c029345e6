package usuario

import "gorm.io/gorm"

type Repository interface {
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorIDs(db *gorm.DB, ids []uint) ([]Usuario, error)
	BuscarPorMatricula(db *gorm.DB, matricula string) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.Preload("Especializada").First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorIDs(db *gorm.DB, ids []uint) ([]Usuario, error) {
	var usuarios []Usuario
	if len(ids) == 0 {
		return usuarios, nil
	}
	err := db.Where("id IN ?", ids).Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) BuscarPorMatricula(db *gorm.DB, matricula string) (*Usuario, error) {
	var u Usuario
	err := db.Where("matricula = ?", matricula).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Preload("Especializada").Order("nome").Find(&usuarios).Error
	return usuarios, err
}

package afastamento

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Criar(db *gorm.DB, a *AfastamentoPessoa) error
	BuscarPorID(db *gorm.DB, id uint) (*AfastamentoPessoa, error)
	Salvar(db *gorm.DB, a *AfastamentoPessoa) error
	Deletar(db *gorm.DB, id uint) error
	Listar(db *gorm.DB, filtro FiltroListagem, hoje string) ([]AfastamentoPessoa, int64, error)

	ExisteAfastamentoDeUsuarios(db *gorm.DB, usuarioIDs []uint, datas []string, excluirID uint) (bool, error)
	SubstituiEmPeriodo(db *gorm.DB, usuarioID uint, datas []string) (bool, error)

	ListarSubstitutos(db *gorm.DB, afastamentoID uint) ([]AfastamentoSubstituto, error)
	UpsertSubstituto(db *gorm.DB, linha *AfastamentoSubstituto) error
	RemoverSubstitutosFora(db *gorm.DB, afastamentoID uint, manterIDs []uint) error
	RemoverTodosSubstitutos(db *gorm.DB, afastamentoID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *AfastamentoPessoa) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*AfastamentoPessoa, error) {
	var a AfastamentoPessoa
	err := db.Preload("Usuario.Especializada").
		Preload("Substitutos.Usuario").
		First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *AfastamentoPessoa) error {
	return db.Omit("Usuario", "Substitutos").Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&AfastamentoPessoa{}, id).Error
}

// Listar aplica os filtros da consulta e devolve a página pedida junto com o
// total. O filtro de datas é de sobreposição de janelas; o de status deriva
// a situação comparando as janelas com hoje.
func (r *repositoryImpl) Listar(db *gorm.DB, filtro FiltroListagem, hoje string) ([]AfastamentoPessoa, int64, error) {
	q := db.Model(&AfastamentoPessoa{})

	switch {
	case filtro.DataInicio != "" && filtro.DataFim != "":
		q = q.Where("afastamento_pessoa.data_inicio <= ? AND afastamento_pessoa.data_fim >= ?", filtro.DataFim, filtro.DataInicio)
	case filtro.DataInicio != "":
		q = q.Where("afastamento_pessoa.data_fim >= ?", filtro.DataInicio)
	case filtro.DataFim != "":
		q = q.Where("afastamento_pessoa.data_inicio <= ?", filtro.DataFim)
	}

	switch NormalizarStatus(filtro.StatusAfastamento) {
	case StatusFinalizado:
		q = q.Where("afastamento_pessoa.data_fim < ?", hoje)
	case StatusVigente:
		q = q.Where("afastamento_pessoa.data_inicio <= ? AND afastamento_pessoa.data_fim >= ?", hoje, hoje)
	case StatusProgramado:
		q = q.Where("afastamento_pessoa.data_inicio > ?", hoje)
	}

	if filtro.SubstitutoID != 0 {
		q = q.Where("EXISTS (SELECT 1 FROM afastamento_substituto s WHERE s.afastamento_pessoa_id = afastamento_pessoa.id AND s.usuario_id = ?)", filtro.SubstitutoID)
	}

	if filtro.EspecializadaID != 0 || filtro.CargoContem != "" {
		q = q.Joins("JOIN usuario ON usuario.id = afastamento_pessoa.usuario_id")
		if filtro.EspecializadaID != 0 {
			q = q.Where("usuario.especializada_id = ?", filtro.EspecializadaID)
		}
		if filtro.CargoContem != "" {
			q = q.Where("LOWER(usuario.cargo) LIKE ?", "%"+strings.ToLower(filtro.CargoContem)+"%")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pagina := filtro.Pagina
	if pagina < 1 {
		pagina = 1
	}
	tamanho := filtro.TamanhoPagina
	if tamanho < 1 {
		tamanho = 20
	}

	var itens []AfastamentoPessoa
	err := q.Preload("Usuario.Especializada").
		Preload("Substitutos.Usuario").
		Order("afastamento_pessoa.data_inicio DESC, afastamento_pessoa.id DESC").
		Offset((pagina - 1) * tamanho).
		Limit(tamanho).
		Find(&itens).Error
	return itens, total, err
}

// ExisteAfastamentoDeUsuarios responde se algum dos usuários tem afastamento
// cuja janela agregada alcança alguma das datas candidatas. O agregado por
// usuário (menor início e maior fim entre todos os registros) permite testar
// cada candidata em uma única comparação; as candidatas são combinadas com
// OR. excluirID tira o próprio registro em edição da conta antes do
// agregado. Lista de datas vazia nunca casa.
func (r *repositoryImpl) ExisteAfastamentoDeUsuarios(db *gorm.DB, usuarioIDs []uint, datas []string, excluirID uint) (bool, error) {
	if len(usuarioIDs) == 0 || len(datas) == 0 {
		return false, nil
	}

	cond := make([]string, 0, len(datas))
	args := make([]interface{}, 0, 2*len(datas))
	for _, d := range datas {
		cond = append(cond, "(MIN(data_inicio) <= ? AND MAX(data_fim) >= ?)")
		args = append(args, d, d)
	}

	q := db.Model(&AfastamentoPessoa{}).Where("usuario_id IN ?", usuarioIDs)
	if excluirID != 0 {
		q = q.Where("id <> ?", excluirID)
	}

	var ids []uint
	err := q.Group("usuario_id").
		Having(strings.Join(cond, " OR "), args...).
		Pluck("usuario_id", &ids).Error
	return len(ids) > 0, err
}

// SubstituiEmPeriodo responde se o usuário figura como substituto em algum
// afastamento cuja janela alcança alguma das datas candidatas.
func (r *repositoryImpl) SubstituiEmPeriodo(db *gorm.DB, usuarioID uint, datas []string) (bool, error) {
	if len(datas) == 0 {
		return false, nil
	}

	cond := make([]string, 0, len(datas))
	args := make([]interface{}, 0, 2*len(datas))
	for _, d := range datas {
		cond = append(cond, "(data_inicio <= ? AND data_fim >= ?)")
		args = append(args, d, d)
	}

	sobrepostos := db.Model(&AfastamentoPessoa{}).
		Select("id").
		Where(strings.Join(cond, " OR "), args...)

	var total int64
	err := db.Model(&AfastamentoSubstituto{}).
		Where("usuario_id = ?", usuarioID).
		Where("afastamento_pessoa_id IN (?)", sobrepostos).
		Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) ListarSubstitutos(db *gorm.DB, afastamentoID uint) ([]AfastamentoSubstituto, error) {
	var linhas []AfastamentoSubstituto
	err := db.Where("afastamento_pessoa_id = ?", afastamentoID).Find(&linhas).Error
	return linhas, err
}

// UpsertSubstituto grava o vínculo; re-vincular um substituto existente
// apenas atualiza os metadados do par.
func (r *repositoryImpl) UpsertSubstituto(db *gorm.DB, linha *AfastamentoSubstituto) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "afastamento_pessoa_id"},
			{Name: "usuario_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"usa_equipe_acervo_substituto", "final_codigo_pa"}),
	}).Create(linha).Error
}

func (r *repositoryImpl) RemoverSubstitutosFora(db *gorm.DB, afastamentoID uint, manterIDs []uint) error {
	q := db.Where("afastamento_pessoa_id = ?", afastamentoID)
	if len(manterIDs) > 0 {
		q = q.Where("usuario_id NOT IN ?", manterIDs)
	}
	return q.Delete(&AfastamentoSubstituto{}).Error
}

func (r *repositoryImpl) RemoverTodosSubstitutos(db *gorm.DB, afastamentoID uint) error {
	return db.Where("afastamento_pessoa_id = ?", afastamentoID).Delete(&AfastamentoSubstituto{}).Error
}

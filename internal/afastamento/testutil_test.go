package afastamento

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pge-digital/api-afastamentos/internal/especializada"
	"github.com/pge-digital/api-afastamentos/internal/filacircular"
	"github.com/pge-digital/api-afastamentos/internal/tipoafastamento"
	"github.com/pge-digital/api-afastamentos/internal/tipodivisao"
	"github.com/pge-digital/api-afastamentos/internal/usuario"
)

const (
	divisaoIntegralID      uint = 1
	divisaoFinalProcessoID uint = 2
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()

	nome := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nome)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&especializada.Especializada{},
		&usuario.Usuario{},
		&tipoafastamento.TipoAfastamento{},
		&tipodivisao.TipoDivisaoAcervo{},
		&filacircular.FilaCircular{},
		&AfastamentoPessoa{},
		&AfastamentoSubstituto{},
	))

	require.NoError(t, db.Create(&especializada.Especializada{ID: 1, Nome: "Procuradoria Fiscal", Sigla: "PF"}).Error)
	require.NoError(t, db.Create(&tipoafastamento.TipoAfastamento{ID: 1, Nome: "Férias"}).Error)
	require.NoError(t, db.Create(&tipodivisao.TipoDivisaoAcervo{ID: divisaoIntegralID, Nome: "Acervo Integral"}).Error)
	require.NoError(t, db.Create(&tipodivisao.TipoDivisaoAcervo{ID: divisaoFinalProcessoID, Nome: tipodivisao.NomeFinalProcesso}).Error)

	return db
}

func novoServicoTeste(t *testing.T, db *gorm.DB, hoje string) *Service {
	t.Helper()

	s := NewService(db, tipodivisao.NewCache(tipodivisao.NewRepository()))
	s.agora = func() time.Time {
		tm, err := time.Parse(FormatoData, hoje)
		require.NoError(t, err)
		return tm
	}
	return s
}

func criarUsuarioTeste(t *testing.T, db *gorm.DB, id uint, nome, vinculo string) {
	t.Helper()

	lotacao := uint(1)
	require.NoError(t, db.Create(&usuario.Usuario{
		ID:              id,
		Nome:            nome,
		Matricula:       fmt.Sprintf("M%04d", id),
		Vinculo:         vinculo,
		Cargo:           vinculo + " do Estado",
		EspecializadaID: &lotacao,
	}).Error)
}

func criarAfastamentoTeste(t *testing.T, db *gorm.DB, usuarioID uint, inicio, fim string) *AfastamentoPessoa {
	t.Helper()

	a := &AfastamentoPessoa{
		UsuarioID:           usuarioID,
		DataInicio:          inicio,
		DataFim:             fim,
		TipoAfastamentoID:   1,
		TipoDivisaoAcervoID: divisaoIntegralID,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func substitutosDoAfastamento(t *testing.T, db *gorm.DB, afastamentoID uint) []AfastamentoSubstituto {
	t.Helper()

	var linhas []AfastamentoSubstituto
	require.NoError(t, db.Where("afastamento_pessoa_id = ?", afastamentoID).Order("usuario_id").Find(&linhas).Error)
	return linhas
}

package afastamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A janela existente é [2025-03-10, 2025-03-20]; as candidatas são as pontas
// da janela proposta. As comparações são inclusivas: janelas que apenas se
// tocam contam como sobrepostas.
func TestExisteAfastamentoDeUsuariosSobreposicao(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")

	casos := []struct {
		nome     string
		inicio   string
		fim      string
		sobrepoe bool
	}{
		{"totalmente antes", "2025-02-01", "2025-02-28", false},
		{"totalmente depois", "2025-04-01", "2025-04-10", false},
		{"inicio dentro", "2025-03-15", "2025-03-30", true},
		{"fim dentro", "2025-03-01", "2025-03-12", true},
		{"contida na existente", "2025-03-12", "2025-03-18", true},
		{"tocando no fim", "2025-03-20", "2025-03-25", true},
		{"tocando no inicio", "2025-03-01", "2025-03-10", true},
		{"um dia antes", "2025-03-01", "2025-03-09", false},
		{"um dia depois", "2025-03-21", "2025-03-25", false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			ok, err := repo.ExisteAfastamentoDeUsuarios(db, []uint{5}, []string{c.inicio, c.fim}, 0)
			require.NoError(t, err)
			assert.Equal(t, c.sobrepoe, ok)
		})
	}
}

func TestExisteAfastamentoDeUsuariosListaVazia(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")

	ok, err := repo.ExisteAfastamentoDeUsuarios(db, []uint{5}, nil, 0)
	require.NoError(t, err)
	assert.False(t, ok, "sem datas candidatas não há comparação")

	ok, err = repo.ExisteAfastamentoDeUsuarios(db, nil, []string{"2025-03-15"}, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExisteAfastamentoDeUsuariosExcluiRegistroEmEdicao(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	a := criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")

	ok, err := repo.ExisteAfastamentoDeUsuarios(db, []uint{5}, []string{"2025-03-15"}, a.ID)
	require.NoError(t, err)
	assert.False(t, ok, "o próprio registro em edição não conta")

	ok, err = repo.ExisteAfastamentoDeUsuarios(db, []uint{5}, []string{"2025-03-15"}, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubstituiEmPeriodo(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	criarUsuarioTeste(t, db, 6, "Bruno", VinculoProcurador)
	a := criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")
	require.NoError(t, db.Create(&AfastamentoSubstituto{AfastamentoPessoaID: a.ID, UsuarioID: 6}).Error)

	ok, err := repo.SubstituiEmPeriodo(db, 6, []string{"2025-03-15"})
	require.NoError(t, err)
	assert.True(t, ok, "Bruno substitui Ana em janela que cobre a candidata")

	ok, err = repo.SubstituiEmPeriodo(db, 6, []string{"2025-05-01"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.SubstituiEmPeriodo(db, 5, []string{"2025-03-15"})
	require.NoError(t, err)
	assert.False(t, ok, "Ana não é substituta de ninguém")
}

func TestListarFiltroDeDatas(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")

	itens, total, err := repo.Listar(db, FiltroListagem{DataInicio: "2025-03-15", DataFim: "2025-04-01"}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, itens, 1)

	_, total, err = repo.Listar(db, FiltroListagem{DataInicio: "2025-03-21"}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, total, err = repo.Listar(db, FiltroListagem{DataFim: "2025-03-09"}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestListarFiltroPorSubstitutoEspecializadaECargo(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	criarUsuarioTeste(t, db, 5, "Ana", VinculoProcurador)
	criarUsuarioTeste(t, db, 6, "Bruno", VinculoProcurador)
	a := criarAfastamentoTeste(t, db, 5, "2025-03-10", "2025-03-20")
	require.NoError(t, db.Create(&AfastamentoSubstituto{AfastamentoPessoaID: a.ID, UsuarioID: 6}).Error)

	_, total, err := repo.Listar(db, FiltroListagem{SubstitutoID: 6}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = repo.Listar(db, FiltroListagem{SubstitutoID: 99}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, total, err = repo.Listar(db, FiltroListagem{EspecializadaID: 1, CargoContem: "procurador"}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = repo.Listar(db, FiltroListagem{EspecializadaID: 2}, "2025-01-01")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

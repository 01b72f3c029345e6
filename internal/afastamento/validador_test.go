package afastamento

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pge-digital/api-afastamentos/internal/usuario"
)

func TestValidarRegraDeVinculo(t *testing.T) {
	casos := []struct {
		nome             string
		vinculoAlvo      string
		vinculosSubs     []string
		mensagemEsperada string
	}{
		{"procurador substituido por procuradores", VinculoProcurador, []string{VinculoProcurador, VinculoProcurador}, ""},
		{"procurador substituido por servidor", VinculoProcurador, []string{VinculoProcurador, VinculoServidor}, MsgApenasProcuradores},
		{"procurador substituido so por servidores", VinculoProcurador, []string{VinculoServidor}, MsgApenasProcuradores},
		{"servidor substituido por servidores", VinculoServidor, []string{VinculoServidor}, ""},
		{"servidor substituido por procurador", VinculoServidor, []string{VinculoProcurador}, ""},
		{"servidor substituido por mistura", VinculoServidor, []string{VinculoProcurador, VinculoServidor}, ""},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			db := novoBancoTeste(t)
			repo := NewRepository()
			usuarios := usuario.NewRepository()
			v := NewValidador(repo, usuarios)

			criarUsuarioTeste(t, db, 10, "Alvo", c.vinculoAlvo)
			ids := make([]uint, 0, len(c.vinculosSubs))
			for i, vinc := range c.vinculosSubs {
				id := uint(20 + i)
				criarUsuarioTeste(t, db, id, fmt.Sprintf("Substituto %d", i), vinc)
				ids = append(ids, id)
			}

			alvo, err := usuarios.BuscarPorID(db, 10)
			require.NoError(t, err)

			a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-10", DataFim: "2025-01-20"}
			err = v.Validar(db, alvo, a, ids, 0)

			if c.mensagemEsperada == "" {
				assert.NoError(t, err)
			} else {
				var ev *ErroValidacao
				require.ErrorAs(t, err, &ev)
				assert.Equal(t, c.mensagemEsperada, ev.Mensagem)
			}
		})
	}
}

func TestValidarJanelaDeDatas(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	usuarios := usuario.NewRepository()
	v := NewValidador(repo, usuarios)

	criarUsuarioTeste(t, db, 10, "Alvo", VinculoServidor)
	alvo, err := usuarios.BuscarPorID(db, 10)
	require.NoError(t, err)

	t.Run("fim antes do inicio reprova", func(t *testing.T) {
		a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-20", DataFim: "2025-01-10"}
		err := v.Validar(db, alvo, a, nil, 0)
		var ev *ErroValidacao
		require.ErrorAs(t, err, &ev)
		assert.Equal(t, MsgDataFinalInvalida, ev.Mensagem)
	})

	t.Run("mesmo dia passa", func(t *testing.T) {
		a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-10", DataFim: "2025-01-10"}
		assert.NoError(t, v.Validar(db, alvo, a, nil, 0))
	})

	t.Run("ponta ausente nao reprova", func(t *testing.T) {
		a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-20"}
		assert.NoError(t, v.Validar(db, alvo, a, nil, 0))
	})
}

func TestValidarSubstitutoJaAfastado(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	usuarios := usuario.NewRepository()
	v := NewValidador(repo, usuarios)

	criarUsuarioTeste(t, db, 10, "Alvo", VinculoProcurador)
	criarUsuarioTeste(t, db, 20, "Substituto", VinculoProcurador)
	criarAfastamentoTeste(t, db, 20, "2025-01-15", "2025-01-25")

	alvo, err := usuarios.BuscarPorID(db, 10)
	require.NoError(t, err)

	a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-10", DataFim: "2025-01-20"}
	err = v.Validar(db, alvo, a, []uint{20}, 0)

	var ev *ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, MsgSubstitutoComAfastamento, ev.Mensagem)
}

func TestValidarAlvoJaSubstituiNoPeriodo(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	usuarios := usuario.NewRepository()
	v := NewValidador(repo, usuarios)

	criarUsuarioTeste(t, db, 10, "Alvo", VinculoProcurador)
	criarUsuarioTeste(t, db, 30, "Afastado", VinculoProcurador)
	outro := criarAfastamentoTeste(t, db, 30, "2025-01-15", "2025-01-25")
	require.NoError(t, db.Create(&AfastamentoSubstituto{AfastamentoPessoaID: outro.ID, UsuarioID: 10}).Error)

	alvo, err := usuarios.BuscarPorID(db, 10)
	require.NoError(t, err)

	a := &AfastamentoPessoa{UsuarioID: 10, DataInicio: "2025-01-10", DataFim: "2025-01-20"}
	err = v.Validar(db, alvo, a, nil, 0)

	var ev *ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Mensagem, VinculoProcurador)
}

func TestValidarPrecondicoes(t *testing.T) {
	v := NewValidador(NewRepository(), usuario.NewRepository())
	lotacao := uint(1)

	t.Run("sem cargo reprova", func(t *testing.T) {
		alvo := &usuario.Usuario{ID: 10, Vinculo: VinculoProcurador, Cargo: "-", EspecializadaID: &lotacao}
		err := v.ValidarPrecondicoes(alvo, []uint{20})
		var ev *ErroValidacao
		require.ErrorAs(t, err, &ev)
		assert.Equal(t, MsgUsuarioSemLotacao, ev.Mensagem)
	})

	t.Run("sem especializada reprova", func(t *testing.T) {
		alvo := &usuario.Usuario{ID: 10, Vinculo: VinculoProcurador, Cargo: "Procurador do Estado"}
		err := v.ValidarPrecondicoes(alvo, []uint{20})
		var ev *ErroValidacao
		require.ErrorAs(t, err, &ev)
		assert.Equal(t, MsgUsuarioSemLotacao, ev.Mensagem)
	})

	t.Run("procurador sem substituto reprova", func(t *testing.T) {
		alvo := &usuario.Usuario{ID: 10, Vinculo: VinculoProcurador, Cargo: "Procurador do Estado", EspecializadaID: &lotacao}
		err := v.ValidarPrecondicoes(alvo, nil)
		var ev *ErroValidacao
		require.ErrorAs(t, err, &ev)
		assert.Equal(t, MsgSubstitutoObrigatorio, ev.Mensagem)
	})

	t.Run("vinculo sem exigencia passa sem substituto", func(t *testing.T) {
		alvo := &usuario.Usuario{ID: 10, Vinculo: "Estagiário", Cargo: "Estagiário", EspecializadaID: &lotacao}
		assert.NoError(t, v.ValidarPrecondicoes(alvo, nil))
	})
}

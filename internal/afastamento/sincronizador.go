package afastamento

import (
	"encoding/json"
	"strings"

	"github.com/pge-digital/api-afastamentos/internal/tipodivisao"
	"gorm.io/gorm"
)

// Sincronizador reconcilia a lista de substitutos desejada com os vínculos
// já gravados de um afastamento.
type Sincronizador struct {
	repo     Repository
	divisoes *tipodivisao.Cache
}

func NewSincronizador(repo Repository, divisoes *tipodivisao.Cache) *Sincronizador {
	return &Sincronizador{repo: repo, divisoes: divisoes}
}

// Sincronizar grava cada substituto informado com seus metadados de par
// (vincular de novo um id existente só atualiza os metadados). Com
// substituirTudo, vínculos gravados que não estão na entrada são removidos;
// sem, ficam como estão. Entrada vazia só tem efeito com substituirTudo, que
// então remove todos os vínculos.
func (s *Sincronizador) Sincronizar(db *gorm.DB, a *AfastamentoPessoa, entradas []SubstitutoRequest, substituirTudo bool) error {
	if len(entradas) == 0 {
		if substituirTudo {
			return s.repo.RemoverTodosSubstitutos(db, a.ID)
		}
		return nil
	}

	finalProcessoID, err := s.divisoes.FinalProcessoID(db)
	if err != nil {
		return err
	}
	divideFinalProcesso := finalProcessoID != 0 && a.TipoDivisaoAcervoID == finalProcessoID

	ids := make([]uint, 0, len(entradas))
	for _, e := range entradas {
		linha := AfastamentoSubstituto{
			AfastamentoPessoaID:       a.ID,
			UsuarioID:                 e.ID,
			UsaEquipeAcervoSubstituto: e.UsaEquipeAcervoSubstituto,
		}
		// O código de PA final só existe na divisão "Final de Processo";
		// em qualquer outro tipo a coluna fica nula, não importa a entrada.
		if divideFinalProcesso {
			linha.FinalCodigoPA = normalizarCodigoPA(e.FinalCodigoPA)
		}

		if err := s.repo.UpsertSubstituto(db, &linha); err != nil {
			return err
		}
		ids = append(ids, e.ID)
	}

	if substituirTudo {
		return s.repo.RemoverSubstitutosFora(db, a.ID, ids)
	}
	return nil
}

// normalizarCodigoPA aceita o valor JSON livre do cliente: strings são
// aparadas (vazia vira nulo) e qualquer outro valor é gravado como seu texto
// JSON.
func normalizarCodigoPA(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return &s
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	}
}

package afastamento

import (
	"fmt"
	"strings"

	"github.com/pge-digital/api-afastamentos/internal/usuario"
	"gorm.io/gorm"
)

// Validador concentra as regras de elegibilidade de um afastamento. As
// regras rodam em ordem fixa e a primeira reprovada encerra a validação: é a
// ordem em que o usuário final vê os erros.
type Validador struct {
	repo     Repository
	usuarios usuario.Repository
}

func NewValidador(repo Repository, usuarios usuario.Repository) *Validador {
	return &Validador{repo: repo, usuarios: usuarios}
}

// ValidarPrecondicoes roda antes das regras de elegibilidade: o afastado
// precisa ter cargo e especializada definidos e, quando o vínculo exige
// substituição (Procurador ou Servidor), ao menos um substituto informado.
func (v *Validador) ValidarPrecondicoes(alvo *usuario.Usuario, substitutoIDs []uint) error {
	if alvo.Cargo == "" || alvo.Cargo == "-" || alvo.EspecializadaID == nil {
		return &ErroValidacao{Mensagem: MsgUsuarioSemLotacao}
	}

	exigeSubstituto := strings.Contains(alvo.Vinculo, VinculoProcurador) ||
		strings.Contains(alvo.Vinculo, VinculoServidor)
	if exigeSubstituto && len(substitutoIDs) == 0 {
		return &ErroValidacao{Mensagem: MsgSubstitutoObrigatorio}
	}

	return nil
}

// Validar aplica as cinco regras de elegibilidade sobre o afastamento
// candidato. excluirID tira o registro em edição da checagem de afastamento
// concorrente (zero na criação).
func (v *Validador) Validar(db *gorm.DB, alvo *usuario.Usuario, a *AfastamentoPessoa, substitutoIDs []uint, excluirID uint) error {
	datas := candidatasDatas(a)

	// 1. Substituto já afastado no período.
	ocupado, err := v.repo.ExisteAfastamentoDeUsuarios(db, substitutoIDs, datas, 0)
	if err != nil {
		return err
	}
	if ocupado {
		return &ErroValidacao{Mensagem: MsgSubstitutoComAfastamento}
	}

	// 2. O afastado já substitui alguém em janela sobreposta.
	substituindo, err := v.repo.SubstituiEmPeriodo(db, alvo.ID, datas)
	if err != nil {
		return err
	}
	if substituindo {
		return &ErroValidacao{Mensagem: fmt.Sprintf(MsgUsuarioSubstituiNoPeriodo, alvo.Vinculo)}
	}

	// 3. Procurador só é substituído por Procurador. Servidores podem ser
	// substituídos por qualquer vínculo.
	if strings.Contains(alvo.Vinculo, VinculoProcurador) && len(substitutoIDs) > 0 {
		substitutos, err := v.usuarios.BuscarPorIDs(db, substitutoIDs)
		if err != nil {
			return err
		}
		for _, s := range substitutos {
			if !strings.Contains(s.Vinculo, VinculoProcurador) {
				return &ErroValidacao{Mensagem: MsgApenasProcuradores}
			}
		}
	}

	// 4. Janela válida. Data ausente não reprova: a checagem só roda com as
	// duas pontas presentes.
	if a.DataInicio != "" && a.DataFim != "" && a.DataFim < a.DataInicio {
		return &ErroValidacao{Mensagem: MsgDataFinalInvalida}
	}

	// 5. O afastado já tem outro afastamento na janela.
	concorrente, err := v.repo.ExisteAfastamentoDeUsuarios(db, []uint{alvo.ID}, datas, excluirID)
	if err != nil {
		return err
	}
	if concorrente {
		return &ErroValidacao{Mensagem: MsgAfastamentoConcorrente}
	}

	return nil
}

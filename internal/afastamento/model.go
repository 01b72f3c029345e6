package afastamento

import (
	"time"

	"github.com/pge-digital/api-afastamentos/internal/usuario"
)

// AfastamentoPessoa registra a ausência de um usuário em um período. As
// janelas de datas são armazenadas como strings YYYY-MM-DD: toda comparação
// do subsistema é feita só sobre a data, sem hora.
type AfastamentoPessoa struct {
	ID                    uint    `json:"id" gorm:"primaryKey"`
	UsuarioID             uint    `json:"usuarioId" gorm:"index;not null"`
	DataInicio            string  `json:"dataInicio" gorm:"size:10;not null"`
	DataFim               string  `json:"dataFim" gorm:"size:10;not null"`
	DataInicioComunicacao *string `json:"dataInicioComunicacao,omitempty" gorm:"size:10"`
	DataFimComunicacao    *string `json:"dataFimComunicacao,omitempty" gorm:"size:10"`
	TipoAfastamentoID     uint    `json:"tipoAfastamentoId" gorm:"not null"`
	TipoDivisaoAcervoID   uint    `json:"tipoDivisaoAcervoId" gorm:"not null"`
	FilaCircularID        *uint   `json:"filaCircularId,omitempty"`

	CriadoEm time.Time `json:"criadoEm" gorm:"autoCreateTime"`

	Usuario     usuario.Usuario         `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID"`
	Substitutos []AfastamentoSubstituto `json:"substitutos,omitempty" gorm:"foreignKey:AfastamentoPessoaID"`
}

func (AfastamentoPessoa) TableName() string { return "afastamento_pessoa" }

// AfastamentoSubstituto é o vínculo N:N entre afastamento e substituto, com
// os metadados do par como colunas de primeira classe. FinalCodigoPA só é
// preenchido quando o tipo de divisão do afastamento é "Final de Processo".
type AfastamentoSubstituto struct {
	AfastamentoPessoaID       uint    `json:"afastamentoPessoaId" gorm:"primaryKey;autoIncrement:false"`
	UsuarioID                 uint    `json:"usuarioId" gorm:"primaryKey;autoIncrement:false"`
	UsaEquipeAcervoSubstituto bool    `json:"usaEquipeAcervoSubstituto" gorm:"not null;default:false"`
	FinalCodigoPA             *string `json:"finalCodigoPa" gorm:"size:500"`

	Usuario usuario.Usuario `json:"usuario,omitempty" gorm:"foreignKey:UsuarioID"`
}

func (AfastamentoSubstituto) TableName() string { return "afastamento_substituto" }

// Vínculos funcionais reconhecidos pelas regras de elegibilidade.
const (
	VinculoProcurador = "Procurador"
	VinculoServidor   = "Servidor"
)

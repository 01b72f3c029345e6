package afastamento

import "time"

// SubstitutoRequest é um substituto informado na criação/edição. O código de
// PA final chega como valor JSON livre e é normalizado pelo sincronizador.
type SubstitutoRequest struct {
	ID                        uint `json:"id" validate:"required"`
	UsaEquipeAcervoSubstituto bool `json:"usaEquipeAcervoSubstituto"`
	FinalCodigoPA             any  `json:"finalCodigoPa"`
}

// CriarAfastamentoRequest é o corpo de POST /afastamentos e de PUT
// /afastamentos/{id} (substituição integral).
type CriarAfastamentoRequest struct {
	UsuarioID             uint                `json:"usuarioId" validate:"required"`
	DataInicio            string              `json:"dataInicio" validate:"required,datetime=2006-01-02"`
	DataFim               string              `json:"dataFim" validate:"required,datetime=2006-01-02"`
	DataInicioComunicacao *string             `json:"dataInicioComunicacao" validate:"omitempty,datetime=2006-01-02"`
	DataFimComunicacao    *string             `json:"dataFimComunicacao" validate:"omitempty,datetime=2006-01-02"`
	TipoAfastamentoID     uint                `json:"tipoAfastamentoId" validate:"required"`
	TipoDivisaoAcervoID   *uint               `json:"tipoDivisaoAcervoId"`
	Usuarios              []SubstitutoRequest `json:"usuarios" validate:"omitempty,dive"`
}

// AtualizarAfastamentoRequest é o corpo de PATCH /afastamentos/{id}; todo
// campo é opcional e só os presentes são aplicados. Usuarios distingue
// ausente (nil) de lista vazia.
type AtualizarAfastamentoRequest struct {
	UsuarioID             *uint                `json:"usuarioId"`
	DataInicio            *string              `json:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	DataFim               *string              `json:"dataFim" validate:"omitempty,datetime=2006-01-02"`
	DataInicioComunicacao *string              `json:"dataInicioComunicacao" validate:"omitempty,datetime=2006-01-02"`
	DataFimComunicacao    *string              `json:"dataFimComunicacao" validate:"omitempty,datetime=2006-01-02"`
	TipoAfastamentoID     *uint                `json:"tipoAfastamentoId"`
	TipoDivisaoAcervoID   *uint                `json:"tipoDivisaoAcervoId"`
	Usuarios              *[]SubstitutoRequest `json:"usuarios" validate:"omitempty,dive"`
}

// FiltroListagem são os parâmetros de consulta de GET /afastamentos.
type FiltroListagem struct {
	Pagina            int
	TamanhoPagina     int
	DataInicio        string
	DataFim           string
	StatusAfastamento string
	SubstitutoID      uint
	EspecializadaID   uint
	CargoContem       string
}

type SubstitutoDTO struct {
	ID                        uint    `json:"id"`
	Nome                      string  `json:"nome"`
	Vinculo                   string  `json:"vinculo"`
	UsaEquipeAcervoSubstituto bool    `json:"usaEquipeAcervoSubstituto"`
	FinalCodigoPA             *string `json:"finalCodigoPa"`
}

type AfastamentoDetalheDTO struct {
	ID                    uint            `json:"id"`
	UsuarioID             uint            `json:"usuarioId"`
	NomeUsuario           string          `json:"nomeUsuario"`
	Vinculo               string          `json:"vinculo"`
	Cargo                 string          `json:"cargo"`
	EspecializadaID       *uint           `json:"especializadaId"`
	DataInicio            string          `json:"dataInicio"`
	DataFim               string          `json:"dataFim"`
	DataInicioComunicacao *string         `json:"dataInicioComunicacao"`
	DataFimComunicacao    *string         `json:"dataFimComunicacao"`
	TipoAfastamentoID     uint            `json:"tipoAfastamentoId"`
	TipoDivisaoAcervoID   uint            `json:"tipoDivisaoAcervoId"`
	FilaCircularID        *uint           `json:"filaCircularId"`
	Status                string          `json:"status"`
	Substitutos           []SubstitutoDTO `json:"substitutos"`
	CriadoEm              time.Time       `json:"criadoEm"`
}

// ResultadoPaginado embala uma página da listagem.
type ResultadoPaginado struct {
	Itens         []AfastamentoDetalheDTO `json:"itens"`
	Total         int64                   `json:"total"`
	Pagina        int                     `json:"pagina"`
	TamanhoPagina int                     `json:"tamanhoPagina"`
}

func paraDetalheDTO(a *AfastamentoPessoa, hoje string) AfastamentoDetalheDTO {
	dto := AfastamentoDetalheDTO{
		ID:                    a.ID,
		UsuarioID:             a.UsuarioID,
		NomeUsuario:           a.Usuario.Nome,
		Vinculo:               a.Usuario.Vinculo,
		Cargo:                 a.Usuario.Cargo,
		EspecializadaID:       a.Usuario.EspecializadaID,
		DataInicio:            a.DataInicio,
		DataFim:               a.DataFim,
		DataInicioComunicacao: a.DataInicioComunicacao,
		DataFimComunicacao:    a.DataFimComunicacao,
		TipoAfastamentoID:     a.TipoAfastamentoID,
		TipoDivisaoAcervoID:   a.TipoDivisaoAcervoID,
		FilaCircularID:        a.FilaCircularID,
		Status:                a.Status(hoje),
		Substitutos:           make([]SubstitutoDTO, 0, len(a.Substitutos)),
		CriadoEm:              a.CriadoEm,
	}

	for _, s := range a.Substitutos {
		dto.Substitutos = append(dto.Substitutos, SubstitutoDTO{
			ID:                        s.UsuarioID,
			Nome:                      s.Usuario.Nome,
			Vinculo:                   s.Usuario.Vinculo,
			UsaEquipeAcervoSubstituto: s.UsaEquipeAcervoSubstituto,
			FinalCodigoPA:             s.FinalCodigoPA,
		})
	}

	return dto
}

package afastamento

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FormatoData é o layout das janelas de afastamento em todo o subsistema.
const FormatoData = "2006-01-02"

// Status derivado da janela do afastamento em relação a hoje; nunca é
// persistido.
const (
	StatusProgramado = "programado"
	StatusVigente    = "vigente"
	StatusFinalizado = "finalizado"
)

// EmVigencia informa se hoje cai dentro de [DataInicio, DataFim], inclusive
// nas duas pontas.
func (a *AfastamentoPessoa) EmVigencia(hoje string) bool {
	return a.DataInicio <= hoje && hoje <= a.DataFim
}

// Status deriva programado/vigente/finalizado comparando a janela com hoje.
func (a *AfastamentoPessoa) Status(hoje string) string {
	switch {
	case a.DataFim < hoje:
		return StatusFinalizado
	case a.DataInicio > hoje:
		return StatusProgramado
	default:
		return StatusVigente
	}
}

var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarStatus reduz o filtro de status informado pelo usuário a uma das
// três formas canônicas, ignorando caixa e acentuação ("Em Vigência" →
// "vigente"). Devolve vazio para entradas não reconhecidas.
func NormalizarStatus(s string) string {
	semAcento, _, err := transform.String(removeAcentos, s)
	if err != nil {
		semAcento = s
	}
	switch strings.ToLower(strings.TrimSpace(semAcento)) {
	case "programado":
		return StatusProgramado
	case "vigente", "em vigencia":
		return StatusVigente
	case "finalizado":
		return StatusFinalizado
	default:
		return ""
	}
}

// candidatasDatas monta as datas a testar contra as janelas existentes: o
// início e o fim do afastamento e, somente quando as duas datas de
// comunicação estão presentes, também o par comunicado. Uma data de
// comunicação sozinha não contribui com candidata alguma.
func candidatasDatas(a *AfastamentoPessoa) []string {
	datas := make([]string, 0, 4)
	if a.DataInicio != "" {
		datas = append(datas, a.DataInicio)
	}
	if a.DataFim != "" {
		datas = append(datas, a.DataFim)
	}
	if a.DataInicioComunicacao != nil && a.DataFimComunicacao != nil {
		datas = append(datas, *a.DataInicioComunicacao, *a.DataFimComunicacao)
	}
	return datas
}

package afastamento

// Mensagens de rejeição exibidas ao usuário final. O texto é contrato: os
// clientes exibem a mensagem como veio.
const (
	MsgSubstitutoComAfastamento  = "Um dos substitutos informados já possui afastamento cadastrado para o período."
	MsgUsuarioSubstituiNoPeriodo = "O usuário com vínculo %s já está cadastrado como substituto em outro afastamento neste período."
	MsgApenasProcuradores        = "Apenas Procuradores podem substituir Procuradores."
	MsgDataFinalInvalida         = "A data final deve ser maior ou igual à data inicial."
	MsgAfastamentoConcorrente    = "O usuário já possui outro afastamento cadastrado para o período."
	MsgSubstitutoObrigatorio     = "Informe ao menos um substituto."
	MsgUsuarioSemLotacao         = "Usuário sem cargo ou especializada definidos."
	MsgAfastamentoEmVigencia     = "Não é possível realizar a operação: o afastamento está em vigência."
	MsgAfastamentoNaoEncontrado  = "Afastamento não encontrado."
	MsgUsuarioNaoEncontrado      = "Usuário não encontrado."
)

// ErroValidacao é qualquer rejeição de regra de negócio; vira HTTP 400.
type ErroValidacao struct {
	Mensagem string
}

func (e *ErroValidacao) Error() string { return e.Mensagem }

// ErroNaoEncontrado cobre afastamento ou usuário inexistente; vira HTTP 404.
type ErroNaoEncontrado struct {
	Mensagem string
}

func (e *ErroNaoEncontrado) Error() string { return e.Mensagem }

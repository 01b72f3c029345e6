package afastamento

import (
	"errors"
	"time"

	"github.com/pge-digital/api-afastamentos/internal/filacircular"
	"github.com/pge-digital/api-afastamentos/internal/tipodivisao"
	"github.com/pge-digital/api-afastamentos/internal/usuario"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service orquestra o ciclo de vida do afastamento: validação de
// elegibilidade, semeadura da fila circular e sincronização de substitutos.
//
// As checagens de sobreposição leem o estado corrente sem lock: duas
// criações concorrentes para o mesmo usuário podem passar na validação antes
// de qualquer uma gravar. Comportamento herdado do sistema original.
type Service struct {
	DB            *gorm.DB
	repo          Repository
	usuarios      usuario.Repository
	filas         filacircular.Repository
	validador     *Validador
	sincronizador *Sincronizador

	agora func() time.Time
}

func NewService(db *gorm.DB, divisoes *tipodivisao.Cache) *Service {
	repo := NewRepository()
	usuarios := usuario.NewRepository()
	return &Service{
		DB:            db,
		repo:          repo,
		usuarios:      usuarios,
		filas:         filacircular.NewRepository(),
		validador:     NewValidador(repo, usuarios),
		sincronizador: NewSincronizador(repo, divisoes),
		agora:         time.Now,
	}
}

func (s *Service) hoje() string {
	return s.agora().Format(FormatoData)
}

// Criar registra um afastamento novo: valida o afastado e os substitutos,
// semeia a fila circular quando há substitutos e vincula a lista informada.
func (s *Service) Criar(entrada CriarAfastamentoRequest) (*AfastamentoDetalheDTO, error) {
	alvo, err := s.usuarios.BuscarPorID(s.DB, entrada.UsuarioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErroNaoEncontrado{Mensagem: MsgUsuarioNaoEncontrado}
	}
	if err != nil {
		return nil, err
	}

	a := AfastamentoPessoa{
		UsuarioID:             entrada.UsuarioID,
		DataInicio:            entrada.DataInicio,
		DataFim:               entrada.DataFim,
		DataInicioComunicacao: entrada.DataInicioComunicacao,
		DataFimComunicacao:    entrada.DataFimComunicacao,
		TipoAfastamentoID:     entrada.TipoAfastamentoID,
		TipoDivisaoAcervoID:   tipodivisao.PadraoID,
	}
	if entrada.TipoDivisaoAcervoID != nil {
		a.TipoDivisaoAcervoID = *entrada.TipoDivisaoAcervoID
	}

	ids := idsDosSubstitutos(entrada.Usuarios)
	if err := s.validador.ValidarPrecondicoes(alvo, ids); err != nil {
		return nil, err
	}
	if err := s.validador.Validar(s.DB, alvo, &a, ids, 0); err != nil {
		return nil, err
	}

	// A fila é gravada antes do afastamento: o registro precisa do id
	// gerado dela como chave estrangeira. Uma falha entre as duas escritas
	// deixa uma fila órfã, que nada referencia.
	fila, err := filacircular.Semear(s.DB, s.filas, ids)
	if err != nil {
		return nil, err
	}
	if fila != nil {
		a.FilaCircularID = &fila.ID
	}

	if err := s.repo.Criar(s.DB, &a); err != nil {
		return nil, err
	}
	if err := s.sincronizador.Sincronizar(s.DB, &a, entrada.Usuarios, false); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"afastamentoId": a.ID,
		"usuarioId":     a.UsuarioID,
		"substitutos":   len(ids),
	}).Info("afastamento criado")

	return s.BuscarPorID(a.ID)
}

// Atualizar aplica uma edição parcial: só os campos presentes mudam e a
// lista de substitutos tem semântica preservadora (ver editar).
func (s *Service) Atualizar(id uint, entrada AtualizarAfastamentoRequest) (*AfastamentoDetalheDTO, error) {
	return s.editar(id, entrada.Usuarios, func(a *AfastamentoPessoa) {
		if entrada.UsuarioID != nil {
			a.UsuarioID = *entrada.UsuarioID
		}
		if entrada.DataInicio != nil {
			a.DataInicio = *entrada.DataInicio
		}
		if entrada.DataFim != nil {
			a.DataFim = *entrada.DataFim
		}
		if entrada.DataInicioComunicacao != nil {
			a.DataInicioComunicacao = entrada.DataInicioComunicacao
		}
		if entrada.DataFimComunicacao != nil {
			a.DataFimComunicacao = entrada.DataFimComunicacao
		}
		if entrada.TipoAfastamentoID != nil {
			a.TipoAfastamentoID = *entrada.TipoAfastamentoID
		}
		if entrada.TipoDivisaoAcervoID != nil {
			a.TipoDivisaoAcervoID = *entrada.TipoDivisaoAcervoID
		}
	})
}

// Substituir sobrescreve o registro por inteiro com o corpo recebido.
func (s *Service) Substituir(id uint, entrada CriarAfastamentoRequest) (*AfastamentoDetalheDTO, error) {
	var fornecidos *[]SubstitutoRequest
	if entrada.Usuarios != nil {
		fornecidos = &entrada.Usuarios
	}
	return s.editar(id, fornecidos, func(a *AfastamentoPessoa) {
		a.UsuarioID = entrada.UsuarioID
		a.DataInicio = entrada.DataInicio
		a.DataFim = entrada.DataFim
		a.DataInicioComunicacao = entrada.DataInicioComunicacao
		a.DataFimComunicacao = entrada.DataFimComunicacao
		a.TipoAfastamentoID = entrada.TipoAfastamentoID
		if entrada.TipoDivisaoAcervoID != nil {
			a.TipoDivisaoAcervoID = *entrada.TipoDivisaoAcervoID
		} else {
			a.TipoDivisaoAcervoID = 0
		}
	})
}

func (s *Service) editar(id uint, fornecidos *[]SubstitutoRequest, aplicar func(*AfastamentoPessoa)) (*AfastamentoDetalheDTO, error) {
	a, err := s.repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErroNaoEncontrado{Mensagem: MsgAfastamentoNaoEncontrado}
	}
	if err != nil {
		return nil, err
	}

	// A vigência é capturada antes das datas mudarem: é o estado de entrada
	// que decide se os substitutos podem ser alterados.
	hoje := s.hoje()
	emVigencia := a.EmVigencia(hoje)
	existentes := a.Substitutos

	aplicar(a)
	if a.TipoDivisaoAcervoID == 0 {
		a.TipoDivisaoAcervoID = tipodivisao.PadraoID
	}

	alvo, err := s.usuarios.BuscarPorID(s.DB, a.UsuarioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErroNaoEncontrado{Mensagem: MsgUsuarioNaoEncontrado}
	}
	if err != nil {
		return nil, err
	}

	// Lista efetiva: sem lista do chamador, ou lista vazia com o
	// afastamento em vigência, valem os vínculos já gravados — um
	// afastamento ativo não perde os substitutos por engano.
	var efetivos []SubstitutoRequest
	switch {
	case fornecidos == nil, emVigencia && len(*fornecidos) == 0:
		efetivos = paraRequests(existentes)
	default:
		efetivos = *fornecidos
	}

	ids := idsDosSubstitutos(efetivos)
	if err := s.validador.ValidarPrecondicoes(alvo, ids); err != nil {
		return nil, err
	}
	if err := s.validador.Validar(s.DB, alvo, a, ids, a.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Salvar(s.DB, a); err != nil {
		return nil, err
	}

	// Em vigência os substitutos não mudam mesmo quando informados: não se
	// altera quem cobre alguém já afastado.
	if !emVigencia && fornecidos != nil {
		if err := s.sincronizador.Sincronizar(s.DB, a, *fornecidos, true); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"afastamentoId": a.ID,
		"emVigencia":    emVigencia,
	}).Info("afastamento atualizado")

	return s.BuscarPorID(a.ID)
}

// Remover apaga o afastamento e seus vínculos de substituto. Afastamento em
// vigência não pode ser removido.
func (s *Service) Remover(id uint) error {
	a, err := s.repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ErroNaoEncontrado{Mensagem: MsgAfastamentoNaoEncontrado}
	}
	if err != nil {
		return err
	}

	if a.EmVigencia(s.hoje()) {
		return &ErroValidacao{Mensagem: MsgAfastamentoEmVigencia}
	}

	if err := s.repo.RemoverTodosSubstitutos(s.DB, a.ID); err != nil {
		return err
	}
	if err := s.repo.Deletar(s.DB, a.ID); err != nil {
		return err
	}

	logrus.WithField("afastamentoId", id).Info("afastamento removido")
	return nil
}

// Listar devolve a página pedida com os filtros aplicados.
func (s *Service) Listar(filtro FiltroListagem) (*ResultadoPaginado, error) {
	if filtro.Pagina < 1 {
		filtro.Pagina = 1
	}
	if filtro.TamanhoPagina < 1 {
		filtro.TamanhoPagina = 20
	}

	hoje := s.hoje()
	itens, total, err := s.repo.Listar(s.DB, filtro, hoje)
	if err != nil {
		return nil, err
	}

	out := &ResultadoPaginado{
		Itens:         make([]AfastamentoDetalheDTO, 0, len(itens)),
		Total:         total,
		Pagina:        filtro.Pagina,
		TamanhoPagina: filtro.TamanhoPagina,
	}
	for i := range itens {
		out.Itens = append(out.Itens, paraDetalheDTO(&itens[i], hoje))
	}
	return out, nil
}

// BuscarPorID devolve o detalhe completo de um afastamento.
func (s *Service) BuscarPorID(id uint) (*AfastamentoDetalheDTO, error) {
	a, err := s.repo.BuscarPorID(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ErroNaoEncontrado{Mensagem: MsgAfastamentoNaoEncontrado}
	}
	if err != nil {
		return nil, err
	}

	dto := paraDetalheDTO(a, s.hoje())
	return &dto, nil
}

func idsDosSubstitutos(entradas []SubstitutoRequest) []uint {
	ids := make([]uint, 0, len(entradas))
	for _, e := range entradas {
		ids = append(ids, e.ID)
	}
	return ids
}

func paraRequests(linhas []AfastamentoSubstituto) []SubstitutoRequest {
	out := make([]SubstitutoRequest, 0, len(linhas))
	for _, l := range linhas {
		req := SubstitutoRequest{
			ID:                        l.UsuarioID,
			UsaEquipeAcervoSubstituto: l.UsaEquipeAcervoSubstituto,
		}
		if l.FinalCodigoPA != nil {
			req.FinalCodigoPA = *l.FinalCodigoPA
		}
		out = append(out, req)
	}
	return out
}

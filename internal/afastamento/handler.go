package afastamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pge-digital/api-afastamentos/internal/tipodivisao"
)

// Handler expõe o serviço de afastamentos pelas rotas REST.
type Handler struct {
	Service  *Service
	validate *validator.Validate
}

func NewHandler(db *gorm.DB, divisoes *tipodivisao.Cache) *Handler {
	return &Handler{
		Service:  NewService(db, divisoes),
		validate: validator.New(),
	}
}

// Listar trata GET /afastamentos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filtro := FiltroListagem{
		DataInicio:        q.Get("dataInicio"),
		DataFim:           q.Get("dataFim"),
		StatusAfastamento: q.Get("statusAfastamento"),
		CargoContem:       q.Get("cargo"),
	}
	filtro.Pagina, _ = strconv.Atoi(q.Get("pagina"))
	filtro.TamanhoPagina, _ = strconv.Atoi(q.Get("tamanhoPagina"))
	if v, err := strconv.Atoi(q.Get("substitutoId")); err == nil {
		filtro.SubstitutoID = uint(v)
	}
	if v, err := strconv.Atoi(q.Get("especializadaId")); err == nil {
		filtro.EspecializadaID = uint(v)
	}

	resultado, err := h.Service.Listar(filtro)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// BuscarPorID trata GET /afastamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	detalhe, err := h.Service.BuscarPorID(id)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detalhe)
}

// Criar trata POST /afastamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var entrada CriarAfastamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(entrada); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detalhe, err := h.Service.Criar(entrada)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(detalhe)
}

// Substituir trata PUT /afastamentos/{id} (sobrescrita integral)
func (h *Handler) Substituir(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var entrada CriarAfastamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(entrada); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detalhe, err := h.Service.Substituir(id, entrada)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detalhe)
}

// Atualizar trata PATCH /afastamentos/{id} (edição parcial)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var entrada AtualizarAfastamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(entrada); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detalhe, err := h.Service.Atualizar(id, entrada)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detalhe)
}

// Remover trata DELETE /afastamentos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Service.Remover(id); err != nil {
		responderErro(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}

func responderErro(w http.ResponseWriter, err error) {
	var ev *ErroValidacao
	if errors.As(err, &ev) {
		http.Error(w, ev.Mensagem, http.StatusBadRequest)
		return
	}

	var en *ErroNaoEncontrado
	if errors.As(err, &en) {
		http.Error(w, en.Mensagem, http.StatusNotFound)
		return
	}

	logrus.WithError(err).Error("erro inesperado no módulo de afastamentos")
	http.Error(w, "Erro interno", http.StatusInternalServerError)
}

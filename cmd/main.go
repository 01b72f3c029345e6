package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/pge-digital/api-afastamentos/internal/afastamento"
	"github.com/pge-digital/api-afastamentos/internal/auth"
	"github.com/pge-digital/api-afastamentos/internal/config"
	"github.com/pge-digital/api-afastamentos/internal/especializada"
	"github.com/pge-digital/api-afastamentos/internal/filacircular"
	"github.com/pge-digital/api-afastamentos/internal/middleware"
	"github.com/pge-digital/api-afastamentos/internal/tipoafastamento"
	"github.com/pge-digital/api-afastamentos/internal/tipodivisao"
	"github.com/pge-digital/api-afastamentos/internal/usuario"
	"github.com/pge-digital/api-afastamentos/internal/utils/db"
)

func main() {
	cfg := config.GetConfig()
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	auth.ConfigurarChave(cfg.JWTSecret)

	banco, err := db.ConnectDataBase(cfg.DSN)
	if err != nil {
		logrus.Fatal("Erro ao conectar no banco: ", err)
	}

	if cfg.AutoMigrate {
		if err := banco.AutoMigrate(
			&especializada.Especializada{},
			&usuario.Usuario{},
			&tipoafastamento.TipoAfastamento{},
			&tipodivisao.TipoDivisaoAcervo{},
			&filacircular.FilaCircular{},
			&afastamento.AfastamentoPessoa{},
			&afastamento.AfastamentoSubstituto{},
		); err != nil {
			logrus.Fatal("Erro no AutoMigrate: ", err)
		}
	}

	divisoes := tipodivisao.NewCache(tipodivisao.NewRepository())

	// Handlers
	afastamentoHandler := afastamento.NewHandler(banco, divisoes)
	usuarioHandler := usuario.NewHandler(banco)
	tipoAfastamentoHandler := tipoafastamento.NewHandler(banco)
	tipoDivisaoHandler := tipodivisao.NewHandler(banco)
	especializadaHandler := especializada.NewHandler(banco)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logger)

	r.HandleFunc("/login", auth.LoginHandler(banco)).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de afastamentos
	api.HandleFunc("/afastamentos", afastamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/afastamentos", afastamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/afastamentos/{id}", afastamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/afastamentos/{id}", afastamentoHandler.Substituir).Methods("PUT")
	api.HandleFunc("/afastamentos/{id}", afastamentoHandler.Atualizar).Methods("PATCH")
	api.HandleFunc("/afastamentos/{id}", afastamentoHandler.Remover).Methods("DELETE")

	// Rotas de usuários (somente leitura)
	api.HandleFunc("/usuarios", usuarioHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")

	// Rotas de tipos de afastamento
	api.HandleFunc("/tipos-afastamento", tipoAfastamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/tipos-afastamento", tipoAfastamentoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/tipos-afastamento/{id}", tipoAfastamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/tipos-afastamento/{id}", tipoAfastamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tipos-afastamento/{id}", tipoAfastamentoHandler.Deletar).Methods("DELETE")

	// Rotas de tipos de divisão de acervo (somente leitura)
	api.HandleFunc("/tipos-divisao-acervo", tipoDivisaoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/tipos-divisao-acervo/{id}", tipoDivisaoHandler.BuscarPorID).Methods("GET")

	// Rotas de especializadas
	api.HandleFunc("/especializadas", especializadaHandler.Criar).Methods("POST")
	api.HandleFunc("/especializadas", especializadaHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/especializadas/{id}", especializadaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/especializadas/{id}", especializadaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/especializadas/{id}", especializadaHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigens,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	endereco := fmt.Sprintf(":%d", cfg.PortaHTTP)
	logrus.Infof("Servidor rodando em http://localhost%s", endereco)
	logrus.Fatal(http.ListenAndServe(endereco, c.Handler(r)))
}

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pge-digital/api-afastamentos/internal/usuario"
	"github.com/pge-digital/api-afastamentos/internal/utils"
)

// LoginHandler autentica por matrícula e senha e emite o token de sessão.
// Em produção a senha vem sincronizada do diretório; aqui o hash local
// cumpre o papel do bind.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	usuarios := usuario.NewRepository()

	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Matricula string `json:"matricula"`
			Senha     string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		u, err := usuarios.BuscarPorMatricula(db, req.Matricula)
		if err != nil {
			http.Error(w, "Matrícula ou senha inválida", http.StatusUnauthorized)
			return
		}

		if !utils.CheckSenha(u.Senha, req.Senha) {
			http.Error(w, "Matrícula ou senha inválida", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(u.ID)
		if err != nil {
			logrus.WithError(err).Error("falha ao gerar token")
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"usuario": map[string]any{
				"id":        u.ID,
				"nome":      u.Nome,
				"matricula": u.Matricula,
				"vinculo":   u.Vinculo,
			},
		})
	}
}

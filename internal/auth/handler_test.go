package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pge-digital/api-afastamentos/internal/usuario"
	"github.com/pge-digital/api-afastamentos/internal/utils"
)

func novoBancoLogin(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usuario.Usuario{}))

	hash, err := utils.HashSenha("senha-correta")
	require.NoError(t, err)
	require.NoError(t, db.Create(&usuario.Usuario{
		ID:        7,
		Nome:      "Maria da Silva",
		Matricula: "12345",
		Senha:     hash,
		Vinculo:   "Procurador do Estado",
		Cargo:     "Procurador",
	}).Error)

	return db
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	ConfigurarChave("segredo-de-teste")
	db := novoBancoLogin(t)

	corpo := `{"matricula":"12345","senha":"senha-correta"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	LoginHandler(db)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"matricula":"12345"`)
	assert.NotContains(t, rec.Body.String(), "senha", "a senha nunca aparece na resposta")
}

func TestLoginComSenhaErrada(t *testing.T) {
	ConfigurarChave("segredo-de-teste")
	db := novoBancoLogin(t)

	corpo := `{"matricula":"12345","senha":"outra"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	LoginHandler(db)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginComMatriculaDesconhecida(t *testing.T) {
	ConfigurarChave("segredo-de-teste")
	db := novoBancoLogin(t)

	corpo := `{"matricula":"99999","senha":"senha-correta"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	LoginHandler(db)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

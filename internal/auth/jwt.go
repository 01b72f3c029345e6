package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var chaveJWT []byte

// ConfigurarChave define o segredo de assinatura; chamada uma vez no boot.
func ConfigurarChave(segredo string) {
	chaveJWT = []byte(segredo)
}

type Claims struct {
	UsuarioID uint `json:"usuarioId"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 24h
func GerarToken(usuarioID uint) (string, error) {
	claims := &Claims{
		UsuarioID: usuarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(chaveJWT)
}

// ValidarToken valida o token e retorna as claims
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return chaveJWT, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}

package tipodivisao

import (
	"errors"
	"sync"

	"gorm.io/gorm"
)

// Cache resolve o id do tipo "Final de Processo" uma única vez por processo.
// É injetado no serviço de afastamentos em vez de ficar como estado mutável
// dentro dele; se o tipo não existir no banco o id resolvido é zero e nenhum
// afastamento casa com ele.
type Cache struct {
	repo Repository
	once sync.Once
	id   uint
	err  error
}

func NewCache(repo Repository) *Cache {
	return &Cache{repo: repo}
}

// FinalProcessoID devolve o id do tipo "Final de Processo", consultando o
// banco apenas na primeira chamada.
func (c *Cache) FinalProcessoID(db *gorm.DB) (uint, error) {
	c.once.Do(func() {
		t, err := c.repo.BuscarPorNome(db, NomeFinalProcesso)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		if err != nil {
			c.err = err
			return
		}
		c.id = t.ID
	})
	return c.id, c.err
}

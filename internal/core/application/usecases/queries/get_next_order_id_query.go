package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetNextOrderIDQueryIsNotConstructed = errors.New(
	"GetNextOrderIDQuery must be created via NewGetNextOrderIDQuery constructor",
)

// GetNextOrderIDQuery asks for the id the next placed order will get, which is also
// the number of orders placed so far.
type GetNextOrderIDQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNextOrderIDQuery() GetNextOrderIDQuery {
	return GetNextOrderIDQuery{guard: guard.NewConstructorGuard()}
}

func (q GetNextOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderIDQueryIsNotConstructed)
}

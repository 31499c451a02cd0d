package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order by id.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse is the externally visible order record. Phase is empty
// unless the order is IN_TRANSIT; Transporter is empty until transportation is
// requested.
type GetOrderQueryResponse struct {
	ID               int64
	HerderID         int64
	Seller           string
	Buyer            string
	Quantity         int64
	Status           string
	Phase            string
	Transporter      string
	Distance         int64
	PickedUpQuantity int64
	EarTagNumbers    []int64
}

package queries

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns NotFound for an id that was never allocated.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:               o.ID(),
		HerderID:         o.HerderID(),
		Seller:           o.Seller().String(),
		Buyer:            o.Buyer().String(),
		Quantity:         o.Quantity(),
		Status:           o.Status().String(),
		Distance:         o.Distance(),
		PickedUpQuantity: o.PickedUpQuantity(),
		EarTagNumbers:    o.EarTags(),
	}
	if o.Phase() != order.NoPhase {
		resp.Phase = o.Phase().String()
	}
	if t, ok := o.Transporter(); ok {
		resp.Transporter = t.String()
	}
	return resp, nil
}

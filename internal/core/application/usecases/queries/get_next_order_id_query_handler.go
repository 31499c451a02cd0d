package queries

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

type GetNextOrderIDQueryHandler struct {
	sequences ports.SequenceReader
}

func NewGetNextOrderIDQueryHandler(sequences ports.SequenceReader) GetNextOrderIDQueryHandler {
	return GetNextOrderIDQueryHandler{sequences: sequences}
}

func (h GetNextOrderIDQueryHandler) Handle(ctx context.Context, query GetNextOrderIDQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.sequences.Peek(ctx, ports.SequenceOrder, order.FirstID)
}

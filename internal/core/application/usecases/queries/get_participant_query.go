package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrGetParticipantQueryIsNotConstructed = errors.New(
	"GetParticipantQuery must be created via NewGetParticipantQuery constructor",
)

// GetParticipantQuery looks up a profile by its numeric id. The same query serves
// herders, slaughterhouses and transporters; each kind has its own handler.
type GetParticipantQuery struct {
	id int64

	guard guard.ConstructorGuard
}

func NewGetParticipantQuery(id int64) GetParticipantQuery {
	return GetParticipantQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetParticipantQuery) Validate() error {
	return q.guard.Validate(ErrGetParticipantQueryIsNotConstructed)
}

func (q GetParticipantQuery) ID() int64 {
	return q.id
}

// GetHerderQueryResponse is the full herder profile record.
type GetHerderQueryResponse struct {
	ID                           int64
	Owner                        string
	Location                     string
	TotalLivestock               int64
	PricePerKg                   int64
	AimagTotalLivestock          int64
	AimagPastureCarryingCapacity int64
	AimagTotalHerderNumber       int64
	Registered                   bool
}

type GetSlaughterhouseQueryResponse struct {
	ID         int64
	Owner      string
	Location   string
	PricePerKg int64
	Registered bool
}

type GetTransporterQueryResponse struct {
	ID         int64
	Owner      string
	Location   string
	TruckInfo  string
	PricePerKm int64
	Registered bool
}

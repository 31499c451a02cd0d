package order

import "supplychain/internal/core/domain/model/kernel"

// EventType names a successful lifecycle transition.
type EventType string

const (
	EventOrderPlaced             EventType = "OrderPlaced"
	EventOrderConfirmed          EventType = "OrderConfirmed"
	EventOrderRejected           EventType = "OrderRejected"
	EventTransportationRequested EventType = "TransportationRequested"
	EventTransportationAccepted  EventType = "TransportationAccepted"
	EventPickUpConfirmed         EventType = "PickUpConfirmed"
	EventDeliveryConfirmed       EventType = "DeliveryConfirmed"
)

// Event records one transition and the principal that caused it.
// Events accumulate on the aggregate until the unit of work drains them at commit.
type Event struct {
	Type    EventType
	OrderID int64
	Actor   kernel.Principal
	Status  Status
	Phase   TransitPhase
}

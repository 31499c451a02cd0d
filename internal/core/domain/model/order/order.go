package order

import (
	"errors"
	"fmt"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// FirstID is the id of the first order ever placed.
const FirstID int64 = 0

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root tracking a buyer's purchase from one herder through
// confirmation, transport, pick-up and delivery.
//
// Order follows these invariants:
//   - quantity is positive
//   - the transporter is set exactly when status is InTransit or Completed
//   - the transit phase is set exactly when status is InTransit
//   - ear tags are recorded only on completion
//
// Fields are private; every change goes through a transition method.
type Order struct {
	id       int64
	herderID int64

	// seller is the principal owning the herder profile, captured at placement.
	seller kernel.Principal
	buyer  kernel.Principal

	quantity int64
	status   Status
	phase    TransitPhase

	transporter      *kernel.Principal
	distance         int64
	pickedUpQuantity int64
	earTags          []int64

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder places a new order in status Placed.
//
// Parameters:
//   - id: sequential order id (FirstID or greater)
//   - herderID: id of an existing registered herder
//   - seller: the herder's principal, the only actor allowed to confirm
//   - buyer: the principal placing the order
//   - quantity: number of livestock units ordered (must be positive)
//
// Example:
//
//	o, err := order.NewOrder(0, herder.ID(), herder.Owner(), buyer, 10)
func NewOrder(id, herderID int64, seller, buyer kernel.Principal, quantity int64) (*Order, error) {
	o := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setHerder(herderID, seller),
		o.setBuyer(buyer),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.record(EventOrderPlaced, buyer)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64                 { return o.id }
func (o *Order) HerderID() int64           { return o.herderID }
func (o *Order) Seller() kernel.Principal  { return o.seller }
func (o *Order) Buyer() kernel.Principal   { return o.buyer }
func (o *Order) Quantity() int64           { return o.quantity }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Phase() TransitPhase       { return o.phase }
func (o *Order) Distance() int64           { return o.distance }
func (o *Order) PickedUpQuantity() int64   { return o.pickedUpQuantity }
func (o *Order) EarTags() []int64          { return slices.Clone(o.earTags) }
func (o *Order) IsEqual(other *Order) bool { return other != nil && o.id == other.id }
func (o *Order) PendingEvents() []Event    { return slices.Clone(o.events) }
func (o *Order) HasTransporter() bool      { return o.transporter != nil }
func (o *Order) record(t EventType, actor kernel.Principal) {
	o.events = append(o.events, Event{Type: t, OrderID: o.id, Actor: actor, Status: o.status, Phase: o.phase})
}

// Transporter returns the assigned transporter, if any.
func (o *Order) Transporter() (kernel.Principal, bool) {
	if o.transporter == nil {
		return kernel.Principal{}, false
	}
	return *o.transporter, true
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

// Confirm lets the owning herder accept (Placed -> Confirmed) or reject
// (Placed -> Rejected) the order.
func (o *Order) Confirm(actor kernel.Principal, accept bool) error {
	operation, transition, event := "confirm order", o.status.Confirm, EventOrderConfirmed
	if !accept {
		operation, transition, event = "reject order", o.status.Reject, EventOrderRejected
	}

	next, err := transition()
	if err != nil {
		return err
	}
	if err = authorize(operation, actor, o.seller); err != nil {
		return err
	}

	o.status = next
	o.record(event, actor)
	return nil
}

// RequestTransportation lets the buyer assign a transporter to a confirmed order.
// The order moves to InTransit with phase Assigned; the transporter still has to accept.
func (o *Order) RequestTransportation(actor, transporter kernel.Principal, distance int64) error {
	next, err := o.status.StartTransit()
	if err != nil {
		return err
	}
	if err = authorize("request transportation", actor, o.buyer); err != nil {
		return err
	}
	if err = errors.Join(transporter.Validate(), validateDistance(distance)); err != nil {
		return err
	}

	o.status = next
	o.phase = Assigned
	o.transporter = &transporter
	o.distance = distance
	o.record(EventTransportationRequested, actor)
	return nil
}

// AcceptTransportation lets the assigned transporter acknowledge the request
// (phase Assigned -> Accepted). The status stays InTransit.
func (o *Order) AcceptTransportation(actor kernel.Principal) error {
	const operation = "accept transportation"
	if o.status != InTransit {
		return errs.NewInvalidStateError(operation, describe(o.status, o.phase))
	}
	next, err := o.phase.Accept()
	if err != nil {
		return err
	}
	if err = authorize(operation, actor, *o.transporter); err != nil {
		return err
	}

	o.phase = next
	o.record(EventTransportationAccepted, actor)
	return nil
}

// ConfirmPickUp lets the transporter record the quantity actually loaded
// (phase Accepted -> PickedUp). The quantity may not exceed the ordered quantity.
func (o *Order) ConfirmPickUp(actor kernel.Principal, quantity int64) error {
	const operation = "confirm pick up"
	if o.status != InTransit {
		return errs.NewInvalidStateError(operation, describe(o.status, o.phase))
	}
	next, err := o.phase.PickUp()
	if err != nil {
		return err
	}
	if err = authorize(operation, actor, *o.transporter); err != nil {
		return err
	}
	if quantity < 1 || quantity > o.quantity {
		return errs.NewValueIsOutOfRangeError("quantityPickedUp", quantity, 1, o.quantity)
	}

	o.phase = next
	o.pickedUpQuantity = quantity
	o.record(EventPickUpConfirmed, actor)
	return nil
}

// ConfirmDelivery lets the buyer close the order with the ear tags of the units
// received (InTransit/PickedUp -> Completed). Between one and pickedUpQuantity
// distinct, non-negative tags are accepted.
func (o *Order) ConfirmDelivery(actor kernel.Principal, earTags []int64) error {
	const operation = "confirm delivery"
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	if err = o.phase.RequirePickedUp(operation); err != nil {
		return err
	}
	if err = authorize(operation, actor, o.buyer); err != nil {
		return err
	}
	if err = validateEarTags(earTags, o.pickedUpQuantity); err != nil {
		return err
	}

	o.status = next
	o.phase = NoPhase
	o.earTags = slices.Clone(earTags)
	o.record(EventDeliveryConfirmed, actor)
	return nil
}

func authorize(operation string, actor, expected kernel.Principal) error {
	if !actor.IsEqual(expected) {
		return errs.NewUnauthorizedError(operation, actor.String())
	}
	return nil
}

func validateDistance(distance int64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%d is not greater than 0", distance))
	}
	return nil
}

func validateEarTags(tags []int64, pickedUp int64) error {
	if len(tags) == 0 || int64(len(tags)) > pickedUp {
		return errs.NewValueIsOutOfRangeError("earTagNumbers count", len(tags), 1, pickedUp)
	}
	seen := make(map[int64]struct{}, len(tags))
	for _, tag := range tags {
		if tag < 0 {
			return errs.NewValueIsInvalidErrorWithCause("earTagNumbers", fmt.Errorf("%d is negative", tag))
		}
		if _, dup := seen[tag]; dup {
			return errs.NewValueIsInvalidErrorWithCause("earTagNumbers", fmt.Errorf("%d is listed twice", tag))
		}
		seen[tag] = struct{}{}
	}
	return nil
}

func (o *Order) setID(id int64) error {
	if id < FirstID {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is less than %d", id, FirstID))
	}
	o.id = id
	return nil
}

func (o *Order) setHerder(herderID int64, seller kernel.Principal) error {
	if herderID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("herderId", fmt.Errorf("%d is not a herder id", herderID))
	}
	if err := seller.Validate(); err != nil {
		return err
	}
	o.herderID = herderID
	o.seller = seller
	return nil
}

func (o *Order) setBuyer(buyer kernel.Principal) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

func (o *Order) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

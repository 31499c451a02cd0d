package http

import (
	"net/http"

	"supplychain/internal/adapters/in/http/api"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders. The caller becomes the buyer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[api.PlaceOrderJSONRequestBody](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(caller, body.HerderID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, api.OrderID{OrderID: id})
}

// GetNextOrderID handles GET /api/v1/orders/next-id.
func (s *Server) GetNextOrderID(ctx echo.Context) error {
	id, err := s.queries.GetNextOrderID.Handle(ctx.Request().Context(), queries.NewGetNextOrderIDQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.OrderID{OrderID: id})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Order{
		OrderID:          o.ID,
		HerderID:         o.HerderID,
		Seller:           o.Seller,
		Buyer:            o.Buyer,
		Quantity:         o.Quantity,
		Status:           api.OrderStatus(o.Status),
		Phase:            api.OrderPhase(o.Phase),
		Transporter:      o.Transporter,
		Distance:         o.Distance,
		QuantityPickedUp: o.PickedUpQuantity,
		EarTagNumbers:    o.EarTagNumbers,
	})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirmation.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID int64) error {
	return s.transition(ctx, func(caller kernel.Principal) error {
		body, err := bind[api.ConfirmOrderJSONRequestBody](ctx)
		if err != nil {
			return err
		}
		cmd, err := commands.NewConfirmOrderCommand(caller, orderID, body.Accept)
		if err != nil {
			return err
		}
		return s.commands.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// RequestTransportation handles POST /api/v1/orders/{orderId}/transportation.
func (s *Server) RequestTransportation(ctx echo.Context, orderID int64) error {
	return s.transition(ctx, func(caller kernel.Principal) error {
		body, err := bind[api.RequestTransportationJSONRequestBody](ctx)
		if err != nil {
			return err
		}
		transporter, err := kernel.NewPrincipal(body.Transporter)
		if err != nil {
			return err
		}
		cmd, err := commands.NewRequestTransportationCommand(caller, orderID, transporter, body.Distance)
		if err != nil {
			return err
		}
		return s.commands.RequestTransportation.Handle(ctx.Request().Context(), cmd)
	})
}

// AcceptTransportation handles POST /api/v1/orders/{orderId}/transportation/acceptance.
func (s *Server) AcceptTransportation(ctx echo.Context, orderID int64) error {
	return s.transition(ctx, func(caller kernel.Principal) error {
		cmd, err := commands.NewConfirmTransportationRequestCommand(caller, orderID)
		if err != nil {
			return err
		}
		return s.commands.ConfirmTransportationRequest.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDeliveryRequest handles POST /api/v1/orders/{orderId}/delivery-request/confirmation,
// the older name of AcceptTransportation.
func (s *Server) ConfirmDeliveryRequest(ctx echo.Context, orderID int64) error {
	return s.AcceptTransportation(ctx, orderID)
}

// ConfirmPickUp handles POST /api/v1/orders/{orderId}/pickup.
func (s *Server) ConfirmPickUp(ctx echo.Context, orderID int64) error {
	return s.transition(ctx, func(caller kernel.Principal) error {
		body, err := bind[api.ConfirmPickUpJSONRequestBody](ctx)
		if err != nil {
			return err
		}
		cmd, err := commands.NewConfirmPickUpCommand(caller, orderID, body.Quantity)
		if err != nil {
			return err
		}
		return s.commands.ConfirmPickUp.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderID int64) error {
	return s.transition(ctx, func(caller kernel.Principal) error {
		body, err := bind[api.ConfirmDeliveryJSONRequestBody](ctx)
		if err != nil {
			return err
		}
		cmd, err := commands.NewConfirmDeliveryCommand(caller, orderID, body.EarTagNumbers)
		if err != nil {
			return err
		}
		return s.commands.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// transition runs an order command for the caller and answers 204 on success.
func (s *Server) transition(ctx echo.Context, run func(caller kernel.Principal) error) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = run(caller); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrPublishOutboxCommandIsNotConstructed = errors.New(
	"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
)

// PublishOutboxCommand ships up to batchSize pending outbox messages.
//
// Example:
//
//	cmd, _ := NewPublishOutboxCommand(100)
//	handler := NewPublishOutboxCommandHandler(uowFactory, publisher)
//
//	// Run periodically from the relay job
//	published, err := handler.Handle(ctx, cmd)
type PublishOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}

	return PublishOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

func (c *PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}

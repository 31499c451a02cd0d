package orderrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO is the flat row of an order. Transporter is NULL until transportation is
// requested; ear tags are stored once the delivery is confirmed.
type OrderDTO struct {
	ID               int64         `gorm:"primaryKey;autoIncrement:false"`
	HerderID         int64         `gorm:"not null;index"`
	Seller           string        `gorm:"size:256;not null"`
	Buyer            string        `gorm:"size:256;not null;index"`
	Quantity         int64         `gorm:"not null"`
	Status           int           `gorm:"not null;index"`
	Phase            int           `gorm:"not null"`
	Transporter      *string       `gorm:"size:256"`
	Distance         int64         `gorm:"not null"`
	PickedUpQuantity int64         `gorm:"not null"`
	EarTags          pq.Int64Array `gorm:"type:bigint[]"`
	CreatedAt        time.Time     `gorm:"autoCreateTime"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.State()
	dto := OrderDTO{
		ID:               s.ID,
		HerderID:         s.HerderID,
		Seller:           s.Seller.String(),
		Buyer:            s.Buyer.String(),
		Quantity:         s.Quantity,
		Status:           int(s.Status),
		Phase:            int(s.Phase),
		Distance:         s.Distance,
		PickedUpQuantity: s.PickedUpQuantity,
		EarTags:          pq.Int64Array(s.EarTags),
	}
	if s.Transporter != nil {
		transporter := s.Transporter.String()
		dto.Transporter = &transporter
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	seller, err := kernel.NewPrincipal(dto.Seller)
	if err != nil {
		return nil, err
	}
	buyer, err := kernel.NewPrincipal(dto.Buyer)
	if err != nil {
		return nil, err
	}

	s := order.State{
		ID:               dto.ID,
		HerderID:         dto.HerderID,
		Seller:           seller,
		Buyer:            buyer,
		Quantity:         dto.Quantity,
		Status:           order.Status(dto.Status),
		Phase:            order.TransitPhase(dto.Phase),
		Distance:         dto.Distance,
		PickedUpQuantity: dto.PickedUpQuantity,
		EarTags:          []int64(dto.EarTags),
	}
	if dto.Transporter != nil {
		transporter, err := kernel.NewPrincipal(*dto.Transporter)
		if err != nil {
			return nil, err
		}
		s.Transporter = &transporter
	}

	return order.Restore(s)
}

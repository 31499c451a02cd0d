package participantrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
)

// Each kind keeps its own table and id space. Owner is unique per table: a principal
// registers at most one profile of a kind.

type HerderDTO struct {
	ID                           int64     `gorm:"primaryKey;autoIncrement:false"`
	Owner                        string    `gorm:"size:256;not null;uniqueIndex"`
	Location                     string    `gorm:"not null"`
	TotalLivestock               int64     `gorm:"not null"`
	PricePerKg                   int64     `gorm:"not null"`
	AimagTotalLivestock          int64     `gorm:"not null"`
	AimagPastureCarryingCapacity int64     `gorm:"not null"`
	AimagTotalHerderNumber       int64     `gorm:"not null"`
	RegisteredAt                 time.Time `gorm:"autoCreateTime"`
}

func (HerderDTO) TableName() string {
	return "herders"
}

type SlaughterhouseDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	Owner        string    `gorm:"size:256;not null;uniqueIndex"`
	Location     string    `gorm:"not null"`
	PricePerKg   int64     `gorm:"not null"`
	RegisteredAt time.Time `gorm:"autoCreateTime"`
}

func (SlaughterhouseDTO) TableName() string {
	return "slaughterhouses"
}

type TransporterDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	Owner        string    `gorm:"size:256;not null;uniqueIndex"`
	Location     string    `gorm:"not null"`
	TruckInfo    string    `gorm:"not null"`
	PricePerKm   int64     `gorm:"not null"`
	RegisteredAt time.Time `gorm:"autoCreateTime"`
}

func (TransporterDTO) TableName() string {
	return "transporters"
}

func herderFromDomain(h *participant.Herder) HerderDTO {
	aimag := h.Aimag()
	return HerderDTO{
		ID:                           h.ID(),
		Owner:                        h.Owner().String(),
		Location:                     h.Location(),
		TotalLivestock:               h.TotalLivestock(),
		PricePerKg:                   h.PricePerKg(),
		AimagTotalLivestock:          aimag.TotalLivestock,
		AimagPastureCarryingCapacity: aimag.PastureCarryingCapacity,
		AimagTotalHerderNumber:       aimag.TotalHerderNumber,
	}
}

func herderToDomain(dto HerderDTO) (*participant.Herder, error) {
	owner, err := kernel.NewPrincipal(dto.Owner)
	if err != nil {
		return nil, err
	}
	return participant.NewHerder(dto.ID, owner, dto.Location, dto.TotalLivestock, dto.PricePerKg,
		participant.AimagStats{
			TotalLivestock:          dto.AimagTotalLivestock,
			PastureCarryingCapacity: dto.AimagPastureCarryingCapacity,
			TotalHerderNumber:       dto.AimagTotalHerderNumber,
		})
}

func slaughterhouseFromDomain(s *participant.Slaughterhouse) SlaughterhouseDTO {
	return SlaughterhouseDTO{
		ID:         s.ID(),
		Owner:      s.Owner().String(),
		Location:   s.Location(),
		PricePerKg: s.PricePerKg(),
	}
}

func slaughterhouseToDomain(dto SlaughterhouseDTO) (*participant.Slaughterhouse, error) {
	owner, err := kernel.NewPrincipal(dto.Owner)
	if err != nil {
		return nil, err
	}
	return participant.NewSlaughterhouse(dto.ID, owner, dto.Location, dto.PricePerKg)
}

func transporterFromDomain(t *participant.Transporter) TransporterDTO {
	return TransporterDTO{
		ID:         t.ID(),
		Owner:      t.Owner().String(),
		Location:   t.Location(),
		TruckInfo:  t.TruckInfo(),
		PricePerKm: t.PricePerKm(),
	}
}

func transporterToDomain(dto TransporterDTO) (*participant.Transporter, error) {
	owner, err := kernel.NewPrincipal(dto.Owner)
	if err != nil {
		return nil, err
	}
	return participant.NewTransporter(dto.ID, owner, dto.Location, dto.TruckInfo, dto.PricePerKm)
}

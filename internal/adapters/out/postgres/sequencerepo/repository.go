package sequencerepo

import (
	"context"

	"gorm.io/gorm"
)

// GormSequenceRepository implements SequenceRepository using GORM. Ids are allocated
// inside the caller's transaction, so a rollback returns them to the sequence.
type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

const nextSQL = `INSERT INTO sequences (name, next_value) VALUES (?, ?)
ON CONFLICT (name) DO UPDATE SET next_value = sequences.next_value + 1
RETURNING next_value - 1`

// Next returns the current value of the sequence and advances it by one. A sequence
// that does not exist yet starts at start.
func (r *GormSequenceRepository) Next(ctx context.Context, name string, start int64) (int64, error) {
	var value int64
	if err := r.db.WithContext(ctx).Raw(nextSQL, name, start+1).Scan(&value).Error; err != nil {
		return 0, err
	}
	return value, nil
}

func (r *GormSequenceRepository) Peek(ctx context.Context, name string, start int64) (int64, error) {
	var dtos []SequenceDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&dtos).Error; err != nil {
		return 0, err
	}
	if len(dtos) == 0 {
		return start, nil
	}
	return dtos[0].NextValue, nil
}

package sequencerepo

// SequenceDTO holds the next value to hand out for one named sequence.
type SequenceDTO struct {
	Name      string `gorm:"primaryKey;size:64"`
	NextValue int64  `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

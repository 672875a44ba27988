package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies what kind of good a keyword describes.
type Category string

const (
	CategoryEquipment   Category = "equipment"
	CategorySoftware    Category = "software"
	CategoryConsumables Category = "consumables"
	CategoryFurniture   Category = "furniture"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEquipment, CategorySoftware, CategoryConsumables, CategoryFurniture, CategoryOther:
		return true
	}

	return false
}

// Keyword is a catalog entry proposal items reference. Items snapshot the
// unit cost at proposal time, so editing the cost hints here never changes an
// existing proposal.
type Keyword struct {
	ID               uuid.UUID
	Name             string
	Category         Category
	Description      string
	DepartmentID     uuid.UUID
	EstimatedCostMin *int64
	EstimatedCostMax *int64
	CreatedBy        uuid.UUID
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage/category"
)

// Category represents a category in the service layer. A nil OwnerID marks a
// global category.
type Category struct {
	ID      uuid.UUID
	Name    string
	OwnerID *uuid.UUID
}

func categoryFromStorage(row *category.Category) Category {
	converted := Category{
		ID:   row.ID,
		Name: row.Name,
	}
	if row.OwnerID.Valid {
		ownerID := row.OwnerID.UUID
		converted.OwnerID = &ownerID
	}
	return converted
}

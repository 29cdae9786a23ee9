package categories

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
	storagecategory "github.com/carson-networks/finance-server/internal/storage/category"
)

// Category is the API response model for a category. OwnerID is absent for
// global categories.
type Category struct {
	ID      string  `json:"id" doc:"Category UUID"`
	Name    string  `json:"name" doc:"Category name"`
	OwnerID *string `json:"ownerID,omitempty" doc:"Owning user UUID, absent for global categories"`
}

func categoryToResponse(c service.Category) Category {
	resp := Category{
		ID:   c.ID.String(),
		Name: c.Name,
	}
	if c.OwnerID != nil {
		ownerID := c.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}

func storageCategoryToResponse(row *storagecategory.Category) Category {
	resp := Category{
		ID:   row.ID.String(),
		Name: row.Name,
	}
	if row.OwnerID.Valid {
		ownerID := row.OwnerID.UUID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}

func parseCategoryID(raw string) (uuid.UUID, error) {
	return uuid.FromString(raw)
}

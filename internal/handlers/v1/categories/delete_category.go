package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct{}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	Operator operator.Processor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op operator.Processor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete category",
		Description:   "Deletes a category owned by the caller. Absent and foreign rows both answer 404.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseCategoryID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Category not found.")
	}

	action := &actions.DeleteCategory{
		ID:      id,
		OwnerID: current.ID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("Category not found.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete category", err)
	}

	return &DeleteCategoryOutput{}, nil
}

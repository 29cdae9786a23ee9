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
	storagecategory "github.com/carson-networks/finance-server/internal/storage/category"
)

// UpdateCategoryBody is the request body for updating a category. Omitted or
// null fields are left unchanged.
type UpdateCategoryBody struct {
	Name *string `json:"name,omitempty" minLength:"1" doc:"New category name"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

// UpdateCategoryHandler handles PUT /v1/categories/{id}.
type UpdateCategoryHandler struct {
	Operator operator.Processor
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(op operator.Processor) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Operator: op}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Partially updates a category owned by the caller. Foreign and global categories answer 403.",
		Tags:        []string{"Categories"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseCategoryID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Category not found or you do not have permission to edit it.")
	}

	action := &actions.UpdateCategory{
		ID:      id,
		OwnerID: current.ID,
		Patch: storagecategory.CategoryPatch{
			Name: input.Body.Name,
		},
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, huma.Error404NotFound("Category not found or you do not have permission to edit it.")
		case errors.Is(err, apperrors.ErrForbidden):
			return nil, huma.Error403Forbidden("You can only update categories you own.")
		case errors.Is(err, apperrors.ErrConflict):
			return nil, huma.Error400BadRequest("A category with this name already exists.")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update category", err)
		}
	}

	resp := storageCategoryToResponse(action.Updated)
	return &UpdateCategoryOutput{Body: resp}, nil
}

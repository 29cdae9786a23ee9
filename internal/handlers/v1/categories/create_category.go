package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" doc:"Category name, unique within the caller's visible scope"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body Category
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	Operator operator.Processor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op operator.Processor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Description:   "Creates a category owned by the caller. Names must not collide with the caller's own or the global categories.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	action := &actions.CreateCategory{
		Name:    input.Body.Name,
		OwnerID: current.ID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, huma.Error400BadRequest("A category with this name already exists.")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	if logData != nil {
		logData.AddData("categoryID", action.Created.ID.String())
	}

	resp := storageCategoryToResponse(action.Created)
	return &CreateCategoryOutput{Body: resp}, nil
}

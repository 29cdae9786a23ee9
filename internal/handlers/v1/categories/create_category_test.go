package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	storagecategory "github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func testCurrentUser() *user.User {
	return &user.User{ID: uuid.Must(uuid.NewV4())}
}

func newCreateTestAPI(t *testing.T, op *mockProcessor, current *user.User) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCategoryHandler(op).Register(api, auth.InjectUser(current))
	return api
}

// -- HTTP integration tests --

func TestHTTP_CreateCategory_Success(t *testing.T) {
	current := testCurrentUser()
	categoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateCategory) bool {
		return a.Name == "Climbing" && a.OwnerID == current.ID
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.CreateCategory)
		a.Created = &storagecategory.Category{
			ID:      categoryID,
			Name:    a.Name,
			OwnerID: uuid.NullUUID{UUID: a.OwnerID, Valid: true},
		}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/categories", CreateCategoryBody{
		Name: "Climbing",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, categoryID.String(), body.ID)
	assert.Equal(t, "Climbing", body.Name)
	assert.NotNil(t, body.OwnerID)
	assert.Equal(t, current.ID.String(), *body.OwnerID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateCategory_DuplicateName(t *testing.T) {
	current := testCurrentUser()

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(apperrors.ErrConflict)

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/categories", CreateCategoryBody{
		Name: "Groceries",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "already exists")
}

func TestHTTP_CreateCategory_EmptyName(t *testing.T) {
	current := testCurrentUser()
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/categories", CreateCategoryBody{
		Name: "",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateCategory_StoreError(t *testing.T) {
	current := testCurrentUser()

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/categories", CreateCategoryBody{
		Name: "Climbing",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

package budgets

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	storagebudget "github.com/carson-networks/finance-server/internal/storage/budget"
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
	NewCreateBudgetHandler(op).Register(api, auth.InjectUser(current))
	return api
}

func TestHTTP_CreateBudget_Success(t *testing.T) {
	current := testCurrentUser()
	budgetID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateBudget) bool {
		return a.Amount.Equal(decimal.RequireFromString("300.00")) &&
			a.StartDate.Format(dateLayout) == "2025-06-01" &&
			a.EndDate.Format(dateLayout) == "2025-06-30" &&
			a.OwnerID == current.ID &&
			a.CategoryID != nil && *a.CategoryID == categoryID
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.CreateBudget)
		a.Created = &storagebudget.Budget{
			ID:         budgetID,
			Amount:     a.Amount,
			StartDate:  a.StartDate,
			EndDate:    a.EndDate,
			OwnerID:    a.OwnerID,
			CategoryID: uuid.NullUUID{UUID: *a.CategoryID, Valid: true},
		}
	}).Return(nil)

	categoryIDString := categoryID.String()
	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/budgets", CreateBudgetBody{
		Amount:     "300.00",
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-30",
		CategoryID: &categoryIDString,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, budgetID.String(), body.ID)
	assert.Equal(t, "2025-06-01", body.StartDate)
	assert.Equal(t, "2025-06-30", body.EndDate)
	assert.NotNil(t, body.CategoryID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateBudget_InvalidDates(t *testing.T) {
	current := testCurrentUser()
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/budgets", CreateBudgetBody{
		Amount:    "300.00",
		StartDate: "June 2025",
		EndDate:   "2025-06-30",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateBudget_MissingFields(t *testing.T) {
	current := testCurrentUser()
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp, current).Post("/v1/budgets", CreateBudgetBody{
		Amount: "300.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

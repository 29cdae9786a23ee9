package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/handlers/v1/authn"
	"github.com/carson-networks/finance-server/internal/handlers/v1/budgets"
	"github.com/carson-networks/finance-server/internal/handlers/v1/categories"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transactions"
	"github.com/carson-networks/finance-server/internal/handlers/v1/users"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Operator operator.Processor
	Tokens   *auth.TokenService
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	authorize := auth.NewMiddleware(humaAPI, r.Tokens, r.Storage.Users)

	// Public surface: login and signup carry no bearer token.
	authn.NewLoginHandler(r.Service.User, r.Tokens).Register(humaAPI)
	users.NewCreateUserHandler(r.Operator).Register(humaAPI)

	authn.NewMeHandler().Register(humaAPI, authorize)
	users.NewListUsersHandler(r.Service.User).Register(humaAPI, authorize)
	users.NewDeleteUserHandler(r.Operator).Register(humaAPI, authorize)

	categories.NewListCategoriesHandler(r.Service.Category).Register(humaAPI, authorize)
	categories.NewCreateCategoryHandler(r.Operator).Register(humaAPI, authorize)
	categories.NewUpdateCategoryHandler(r.Operator).Register(humaAPI, authorize)
	categories.NewDeleteCategoryHandler(r.Operator).Register(humaAPI, authorize)

	transactions.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI, authorize)
	transactions.NewCreateTransactionHandler(r.Operator, r.Service.Transaction).Register(humaAPI, authorize)
	transactions.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI, authorize)
	transactions.NewUpdateTransactionHandler(r.Operator, r.Service.Transaction).Register(humaAPI, authorize)
	transactions.NewDeleteTransactionHandler(r.Operator).Register(humaAPI, authorize)

	budgets.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI, authorize)
	budgets.NewCreateBudgetHandler(r.Operator).Register(humaAPI, authorize)
	budgets.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI, authorize)
	budgets.NewUpdateBudgetHandler(r.Operator).Register(humaAPI, authorize)
	budgets.NewDeleteBudgetHandler(r.Operator).Register(humaAPI, authorize)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

package routes

import (
	"github.com/charlles-dev/Unity-Bank/internal/handlers"
	appmw "github.com/charlles-dev/Unity-Bank/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRoutes(h *handlers.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthHandler)

	r.Post("/auth/login", h.LoginHandler)
	r.With(appmw.Authenticated).Get("/auth/me", h.MeHandler)

	r.Get("/accounts", h.ListAccountsHandler)
	r.Get("/accounts/search", h.SearchAccountsHandler)
	r.Get("/accounts/{number}", h.GetAccountHandler)
	r.Get("/accounts/{number}/statement", h.StatementHandler)
	r.Get("/statistics", h.StatisticsHandler)

	r.With(appmw.Authenticated).Post("/accounts", h.CreateAccountHandler)
	r.With(appmw.Authenticated).Post("/accounts/{number}/deposit", h.DepositHandler)
	r.With(appmw.Authenticated).Post("/accounts/{number}/withdraw", h.WithdrawHandler)
	r.With(appmw.Authenticated).Post("/accounts/{number}/payments", h.PayBillHandler)
	r.With(appmw.Authenticated).Post("/transfers", h.TransferHandler)
	r.With(appmw.Authenticated).Delete("/accounts/{number}", h.RemoveAccountHandler)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	personnelHandler PersonnelHandler,
	payrollHandler PayrollHandler,
	transactionHandler TransactionHandler,
	financeHandler FinanceHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "institute-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/personnel", func(r chi.Router) {
			r.Get("/", personnelHandler.ListPersonnel)
			r.Post("/", personnelHandler.CreatePersonnel)
			r.Get("/{id}", personnelHandler.GetPersonnel)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/generate", payrollHandler.GeneratePayroll)
			r.Get("/summary", payrollHandler.GetPayrollSummary)

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayments)
				r.Post("/manual", payrollHandler.RecordManualPayment)
				r.Put("/{id}", payrollHandler.UpdatePayment)
				r.Post("/{id}/pay", payrollHandler.MarkAsPaid)
				r.Delete("/{id}", payrollHandler.DeletePayment)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionHandler.ListTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/stats", transactionHandler.GetStats)
			r.Delete("/{id}", transactionHandler.DeleteTransaction)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Get("/overview", financeHandler.GetOverview)
		})
	})

	return r
}

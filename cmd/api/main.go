package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/edusuite/institute-backend-go/internal/config"
	appHTTP "github.com/edusuite/institute-backend-go/internal/handler/http"
	"github.com/edusuite/institute-backend-go/internal/pkg/cron"
	"github.com/edusuite/institute-backend-go/internal/pkg/database"
	"github.com/edusuite/institute-backend-go/internal/repository/postgresql"
	financeService "github.com/edusuite/institute-backend-go/internal/service/finance"
	payrollService "github.com/edusuite/institute-backend-go/internal/service/payroll"
	personnelService "github.com/edusuite/institute-backend-go/internal/service/personnel"
	transactionService "github.com/edusuite/institute-backend-go/internal/service/transaction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	personnelRepo := postgresql.NewPersonnelRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	receiptRepo := postgresql.NewReceiptRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	personnelSvc := personnelService.NewPersonnelService(personnelRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, personnelRepo, receiptRepo, cfg.Payroll.GroupScopedRevenue)
	transactionSvc := transactionService.NewTransactionService(transactionRepo)
	financeSvc := financeService.NewFinanceService(analyticsRepo, transactionSvc)

	personnelHandler := appHTTP.NewPersonnelHandler(personnelSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	transactionHandler := appHTTP.NewTransactionHandler(transactionSvc)
	financeHandler := appHTTP.NewFinanceHandler(financeSvc)

	if cfg.Payroll.AutoGenerate {
		scheduler := cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
		scheduler.Start()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			scheduler.Stop()
			db.Close()
			os.Exit(0)
		}()
	}

	router := appHTTP.NewRouter(
		personnelHandler,
		payrollHandler,
		transactionHandler,
		financeHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

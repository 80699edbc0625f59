package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/payease-hq/payease-backend-go/internal/config"
	appHTTP "github.com/payease-hq/payease-backend-go/internal/handler/http"
	"github.com/payease-hq/payease-backend-go/internal/pkg/cron"
	"github.com/payease-hq/payease-backend-go/internal/pkg/database"
	"github.com/payease-hq/payease-backend-go/internal/pkg/email"
	"github.com/payease-hq/payease-backend-go/internal/pkg/jwt"
	"github.com/payease-hq/payease-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payease-hq/payease-backend-go/internal/service/attendance"
	serviceAuth "github.com/payease-hq/payease-backend-go/internal/service/auth"
	serviceCompany "github.com/payease-hq/payease-backend-go/internal/service/company"
	employeeService "github.com/payease-hq/payease-backend-go/internal/service/employee"
	payrollService "github.com/payease-hq/payease-backend-go/internal/service/payroll"
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

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, companyRepo, JWTService)
	companyService := serviceCompany.NewCompanyService(db, companyRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, companyRepo, attendanceRepo, emailService)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, db).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/config"
	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	appHTTP "github.com/hrmslite/hrms-backend-go/internal/handler/http"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/cron"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/storage"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrmslite/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrmslite/hrms-backend-go/internal/service/auth"
	documentService "github.com/hrmslite/hrms-backend-go/internal/service/document"
	employeeService "github.com/hrmslite/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrmslite/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrmslite/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/hrmslite/hrms-backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	salaryStructureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payrollConfigRepo := postgresql.NewPayrollConfigRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	promotionRepo := postgresql.NewPromotionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	workConfig, err := attendance.NewWorkConfig(
		cfg.Work.StandardStartTime,
		cfg.Work.StandardEndTime,
		cfg.Work.LateThresholdMinutes,
		cfg.Work.EarlyLeaveThresholdMinutes,
		cfg.Work.HalfDayThresholdHours,
	)
	if err != nil {
		log.Fatal("Invalid work configuration:", err)
	}

	authSvc, err := authService.NewAuthService(cfg.Admin, jwtService)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, workConfig)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, holidayRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		salaryStructureRepo,
		payrollRepo,
		bonusRepo,
		payrollConfigRepo,
		employeeRepo,
		attendanceRepo,
		leaveRequestRepo,
		holidayRepo,
		payroll.PayslipCompany{Name: cfg.App.CompanyName, Address: cfg.App.CompanyAddress},
	)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileStorage)
	performanceSvc := performanceService.NewPerformanceService(db, goalRepo, reviewRepo, promotionRepo, employeeRepo)

	if err := leaveSvc.EnsureDefaultLeaveTypes(context.Background()); err != nil {
		log.Fatal("Failed to seed leave types:", err)
	}

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Document:    appHTTP.NewDocumentHandler(documentSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("payroll-auto-process", 24*time.Hour, payrollSvc.AutoProcess)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

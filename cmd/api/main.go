package main

import (
	"fmt"
	"net/http"

	"github.com/dycrane/crane-safety-backend-go/internal/config"
	appHTTP "github.com/dycrane/crane-safety-backend-go/internal/handler/http"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/jwt"
	"github.com/dycrane/crane-safety-backend-go/internal/repository/postgresql"
	assignmentService "github.com/dycrane/crane-safety-backend-go/internal/service/assignment"
	attendanceService "github.com/dycrane/crane-safety-backend-go/internal/service/attendance"
	authService "github.com/dycrane/crane-safety-backend-go/internal/service/auth"
	craneService "github.com/dycrane/crane-safety-backend-go/internal/service/crane"
	documentService "github.com/dycrane/crane-safety-backend-go/internal/service/document"
	requestService "github.com/dycrane/crane-safety-backend-go/internal/service/request"
	siteService "github.com/dycrane/crane-safety-backend-go/internal/service/site"
	userService "github.com/dycrane/crane-safety-backend-go/internal/service/user"
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
	orgRepo := postgresql.NewOrgRepository(db)
	craneRepo := postgresql.NewCraneRepository(db)
	craneModelRepo := postgresql.NewCraneModelRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	siteCraneRepo := postgresql.NewSiteCraneAssignmentRepository(db)
	driverAssignmentRepo := postgresql.NewDriverAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	documentRequestRepo := postgresql.NewDocumentRequestRepository(db)
	documentItemRepo := postgresql.NewDocumentItemRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	userSvc := userService.NewService(userRepo)
	authSvc := authService.NewService(userRepo, JWTService)
	siteSvc := siteService.NewService(siteRepo, userSvc)
	craneSvc := craneService.NewService(craneRepo, craneModelRepo, orgRepo)
	assignmentSvc := assignmentService.NewService(db, siteCraneRepo, driverAssignmentRepo, craneRepo, siteRepo, userSvc)
	attendanceSvc := attendanceService.NewService(attendanceRepo, driverAssignmentRepo)
	documentSvc := documentService.NewService(documentRequestRepo, documentItemRepo, userSvc, cfg.Document)
	requestSvc := requestService.NewService(requestRepo, orgRepo, userSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	craneHandler := appHTTP.NewCraneHandler(craneSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	documentHandler := appHTTP.NewDocumentHandler(documentSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		siteHandler,
		craneHandler,
		assignmentHandler,
		attendanceHandler,
		documentHandler,
		requestHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

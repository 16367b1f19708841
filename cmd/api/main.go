package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/teampulse/standup-backend-go/internal/config"
	appHTTP "github.com/teampulse/standup-backend-go/internal/handler/http"
	"github.com/teampulse/standup-backend-go/internal/pkg/cron"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/pkg/jwt"
	"github.com/teampulse/standup-backend-go/internal/pkg/oauth"
	"github.com/teampulse/standup-backend-go/internal/pkg/sse"
	"github.com/teampulse/standup-backend-go/internal/pkg/storage"
	"github.com/teampulse/standup-backend-go/internal/pkg/webhook"
	"github.com/teampulse/standup-backend-go/internal/repository/postgresql"
	authService "github.com/teampulse/standup-backend-go/internal/service/auth"
	dashboardService "github.com/teampulse/standup-backend-go/internal/service/dashboard"
	deliverableService "github.com/teampulse/standup-backend-go/internal/service/deliverable"
	departmentService "github.com/teampulse/standup-backend-go/internal/service/department"
	"github.com/teampulse/standup-backend-go/internal/service/file"
	leaveService "github.com/teampulse/standup-backend-go/internal/service/leave"
	standupService "github.com/teampulse/standup-backend-go/internal/service/standup"
	userService "github.com/teampulse/standup-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	standupRepo := postgresql.NewStandupRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	deliverableRepo := postgresql.NewDeliverableRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	window, err := standupService.ParseWindow(cfg.Standup.OpenTime, cfg.Standup.CutoffTime)
	if err != nil {
		log.Fatal("Invalid submission window: ", err)
	}
	location := cfg.Location()

	hub := sse.NewHub()
	webhookClient := webhook.NewClient(cfg.Webhook.URL)
	fileService := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(db, userRepo, JWTService)
	userSvc := userService.NewUserService(db, userRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, userRepo)
	standupSvc := standupService.NewStandupService(
		db,
		standupRepo,
		leaveRepo,
		userRepo,
		departmentRepo,
		fileService,
		webhookClient,
		hub,
		window,
		location,
		cfg.Webhook.Bucket,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, hub, location)
	deliverableSvc := deliverableService.NewDeliverableService(db, deliverableRepo, userRepo, departmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo, departmentRepo, window, location)

	scheduler := cron.NewScheduler()
	standupJobs := cron.NewStandupJobs(standupRepo, cfg.Standup, location)
	standupJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:         JWTService,
		AuthHandler:        appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		UserHandler:        appHTTP.NewUserHandler(userSvc),
		DepartmentHandler:  appHTTP.NewDepartmentHandler(departmentSvc),
		StandupHandler:     appHTTP.NewStandupHandler(standupSvc),
		LeaveHandler:       appHTTP.NewLeaveHandler(leaveSvc),
		DeliverableHandler: appHTTP.NewDeliverableHandler(deliverableSvc),
		DashboardHandler:   appHTTP.NewDashboardHandler(dashboardSvc),
		EventsHandler:      appHTTP.NewEventsHandler(JWTService, hub),
		FrontendURL:        cfg.App.FrontendURL,
		Env:                cfg.App.Env,
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

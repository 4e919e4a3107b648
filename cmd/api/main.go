package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "idcard-backend/internal/adapter/http"
	mw "idcard-backend/internal/adapter/middleware"
	"idcard-backend/internal/adapter/repository/mysql"
	"idcard-backend/internal/config"
	appDomain "idcard-backend/internal/domain/application"
	apptDomain "idcard-backend/internal/domain/appointment"
	docDomain "idcard-backend/internal/domain/document"
	locDomain "idcard-backend/internal/domain/location"
	payDomain "idcard-backend/internal/domain/payment"
	"idcard-backend/internal/domain/user"
	"idcard-backend/internal/infrastructure/cache"
	"idcard-backend/internal/infrastructure/db"
	"idcard-backend/internal/infrastructure/payprovider"
	"idcard-backend/internal/infrastructure/storage"
	appUC "idcard-backend/internal/usecase/application"
	authUC "idcard-backend/internal/usecase/auth"
	bookingUC "idcard-backend/internal/usecase/booking"
	docUC "idcard-backend/internal/usecase/document"
	locUC "idcard-backend/internal/usecase/location"
	payUC "idcard-backend/internal/usecase/payment"
	reportUC "idcard-backend/internal/usecase/reporting"
	reviewUC "idcard-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&appDomain.Application{},
		&apptDomain.Appointment{},
		&locDomain.Location{},
		&docDomain.Document{},
		&payDomain.Payment{},
		&user.User{},
		&user.Session{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	applications := mysql.NewApplicationRepository(gdb)
	appointments := mysql.NewAppointmentRepository(gdb)
	locations := mysql.NewLocationRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	reports := mysql.NewReportingRepository(gdb)
	uowTx := mysql.NewGormUoW(gdb)

	provider := payprovider.NewSimulator(time.Now().UnixNano())

	applicationUC := appUC.NewUsecase(applications, documents, appointments, locations)
	bookUC := bookingUC.NewUsecase(applications, appointments, locations, uowTx)
	reviewUc := reviewUC.NewUsecase(applications, appointments, uowTx)
	paymentUC := payUC.NewUsecase(payments, applications, provider, uowTx)
	documentUC := docUC.NewUsecase(applications, documents, store, uowTx)
	locationUC := locUC.NewUsecase(locations, appointments, reports)
	reportingUC := reportUC.NewUsecase(reports)
	authUc := authUC.NewUsecase(users, time.Duration(cfg.SessionTTLSecs)*time.Second)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authUc.Bootstrap(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal(err)
		}
	}

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(applicationUC, reviewUc)
	apptH := httpadp.NewAppointmentHandler(bookUC, reviewUc)
	payH := httpadp.NewPaymentHandler(paymentUC)
	docH := httpadp.NewDocumentHandler(documentUC, cfg.MaxUploadBytes, strings.Split(cfg.AllowedMimeList, ","))
	locH := httpadp.NewLocationHandler(locationUC)
	adminH := httpadp.NewAdminHandler(reportingUC, reviewUc, applicationUC)
	authH := httpadp.NewAuthHandler(authUc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	authed := mw.RequireAuth(authUc)
	admin := mw.RequireAdmin()

	// routes
	e.GET("/health", h.Health)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	api.POST("/applications", appH.Create)
	api.GET("/applications/:applicationId", appH.Get)

	api.POST("/payments/process", payH.Process, idemp)
	api.GET("/payments/verify/:transactionId", payH.Verify)
	api.GET("/payments/methods/available", payH.Methods)

	api.POST("/appointments/book", apptH.Book, idemp)
	api.GET("/appointments/availability", apptH.Availability)
	api.GET("/appointments/confirmation/:code", apptH.Confirmation)

	api.GET("/locations", locH.List)
	api.GET("/locations/:locationId", locH.Get)

	api.POST("/uploads/:applicationId/:documentType", docH.Upload)
	api.GET("/uploads/application/:applicationId", docH.ListByApplication)
	api.DELETE("/uploads/:documentId", docH.Delete)

	api.POST("/auth/login", authH.Login)
	api.GET("/auth/me", authH.Me, authed)
	api.POST("/auth/logout", authH.Logout, authed)

	adm := api.Group("", authed, admin)
	adm.GET("/applications", appH.List)
	adm.GET("/applications/search/query", appH.Search)
	adm.PATCH("/applications/:applicationId/status", appH.UpdateStatus)
	adm.GET("/appointments", apptH.List)
	adm.PATCH("/appointments/:appointmentId/status", apptH.UpdateStatus)
	adm.POST("/locations", locH.Create)
	adm.PUT("/locations/:locationId", locH.Update)
	adm.DELETE("/locations/:locationId", locH.Deactivate)
	adm.GET("/locations/:locationId/stats", locH.Stats)
	adm.GET("/admin/dashboard/stats", adminH.Dashboard)
	adm.POST("/admin/applications/bulk-approve", adminH.BulkApprove)
	adm.GET("/admin/export/applications", adminH.ExportApplications)
	adm.GET("/admin/reports/summary", adminH.Summary)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

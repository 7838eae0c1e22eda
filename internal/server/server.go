package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/dongwonkwak/boardly-sub002/docs"
	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/config"
	"github.com/dongwonkwak/boardly-sub002/internal/handler"
	"github.com/dongwonkwak/boardly-sub002/internal/middleware"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
}

func Init(cfg *config.Config, log *logrus.Logger) (*Server, error) {
	if err := runMigrations(cfg, log); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	log.Info("✅ Connected to database")

	r := gin.Default()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Core wiring: one resolver shared by everything, one transaction
	// runner for the services, one audit sink.
	resolver := authz.NewResolver(boardRepo, memberRepo)
	txManager := repository.NewTxManager(db)
	audit := service.NewActivityAudit(activityRepo, log)

	boardService := service.NewBoardService(txManager, audit)
	membershipService := service.NewMembershipService(txManager, audit)
	boardDeleter := service.NewBoardDeleter(txManager, log)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	boardHandler := handler.NewBoardHandler(boardService, boardDeleter)
	memberHandler := handler.NewMemberHandler(membershipService, userRepo)
	listHandler := handler.NewListHandler(listRepo, resolver)
	cardHandler := handler.NewCardHandler(cardRepo, listRepo, resolver)
	labelHandler := handler.NewLabelHandler(labelRepo, resolver)
	activityHandler := handler.NewActivityHandler(activityRepo, resolver)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Board routes
		authorized.POST("/boards", boardHandler.Create)
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/shared-boards", boardHandler.GetShared)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.PUT("/boards/:id", boardHandler.Update)
		authorized.POST("/boards/:id/archive", boardHandler.Archive)
		authorized.POST("/boards/:id/unarchive", boardHandler.Unarchive)
		authorized.POST("/boards/:id/star", boardHandler.Star)
		authorized.DELETE("/boards/:id", boardHandler.Delete)

		// Membership routes
		authorized.POST("/boards/:id/members", memberHandler.Add)
		authorized.GET("/boards/:id/members", memberHandler.List)
		authorized.DELETE("/boards/:id/members/:user_id", memberHandler.Remove)
		authorized.PUT("/boards/:id/members/:user_id/role", memberHandler.ChangeRole)

		// List routes
		authorized.POST("/lists", listHandler.Create)
		authorized.GET("/boards/:id/lists", listHandler.GetByBoard)
		authorized.PUT("/lists/:id", listHandler.Update)
		authorized.DELETE("/lists/:id", listHandler.Delete)

		// Card routes
		authorized.POST("/cards", cardHandler.Create)
		authorized.GET("/lists/:id/cards", cardHandler.GetByList)
		authorized.PUT("/cards/:id", cardHandler.Update)
		authorized.POST("/cards/:id/move", cardHandler.Move)
		authorized.DELETE("/cards/:id", cardHandler.Delete)

		// Label routes
		authorized.POST("/labels", labelHandler.Create)
		authorized.GET("/boards/:id/labels", labelHandler.GetByBoard)
		authorized.PUT("/labels/:id", labelHandler.Update)
		authorized.DELETE("/labels/:id", labelHandler.Delete)

		// Activity routes
		authorized.GET("/boards/:id/activity", activityHandler.GetByBoard)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	m, err := migrate.New("file://"+cfg.MigrationsPath, url)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info("✅ Migrations applied")
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatalf("Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatalf("Server forced to shutdown: %s", err)
	}

	s.Log.Info("✅ Server exited properly")
}

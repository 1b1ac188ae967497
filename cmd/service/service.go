// File: cmd/service/service.go
// @title        TaskDesk API
// @version      1.0
// @description  User, todo and address management backed by Postgres
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"os"

	"taskdesk/internal/cache"
	"taskdesk/internal/config"
	"taskdesk/internal/database"
	"taskdesk/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "taskdesk/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

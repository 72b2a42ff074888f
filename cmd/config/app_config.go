package config

import (
	"math/rand"
	"os"
	"time"

	"Banking-Clicker-Backend/internal/api/handlers"
	"Banking-Clicker-Backend/internal/api/routes"
	"Banking-Clicker-Backend/internal/middleware"
	"Banking-Clicker-Backend/internal/utils"
	"Banking-Clicker-Backend/pkg/account"
	"Banking-Clicker-Backend/pkg/jwt"
	"Banking-Clicker-Backend/pkg/randomevent"
	"Banking-Clicker-Backend/pkg/upgrade"
	"Banking-Clicker-Backend/pkg/virtual"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Each service locks its own rng; they must not share one source.
	eventRng := rand.New(rand.NewSource(time.Now().UnixNano()))
	offerRng := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	// Repository
	accountRepository := account.NewAccountRepository(db)
	upgradeRepository := upgrade.NewUpgradeRepository(db)
	eventRepository := randomevent.NewEventRepository(db)
	virtualRepository := virtual.NewVirtualRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	accountService := account.NewAccountService(accountRepository, jwtService)
	upgradeService := upgrade.NewUpgradeService(upgradeRepository)
	eventService := randomevent.NewEventService(eventRepository, eventRng)
	virtualService := virtual.NewVirtualService(virtualRepository, offerRng)

	// Handler
	accountHandler := handlers.NewAccountHandler(accountService, validator)
	upgradeHandler := handlers.NewUpgradeHandler(upgradeService, validator)
	randomEventHandler := handlers.NewRandomEventHandler(eventService, validator)
	virtualHandler := handlers.NewVirtualHandler(virtualService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		AccountHandler:     accountHandler,
		UpgradeHandler:     upgradeHandler,
		RandomEventHandler: randomEventHandler,
		VirtualHandler:     virtualHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

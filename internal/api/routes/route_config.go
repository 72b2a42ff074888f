package routes

import (
	"Banking-Clicker-Backend/internal/api/handlers"
	"Banking-Clicker-Backend/internal/middleware"
	"Banking-Clicker-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	AccountHandler     handlers.AccountHandler
	UpgradeHandler     handlers.UpgradeHandler
	RandomEventHandler handlers.RandomEventHandler
	VirtualHandler     handlers.VirtualHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Account()
	c.Upgrades()
	c.RandomEvents()
	c.Virtual()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.AccountHandler.Register)
		auth.Post("/login", c.AccountHandler.Login)
		auth.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.AccountHandler.Profile)
	}
}

func (c *Config) Account() {
	account := c.App.Group("/api/account")
	{
		account.Get("/:id", c.AccountHandler.GetAccount)
		account.Post("", c.AccountHandler.CreateAccount)
		account.Put("/:id", c.AccountHandler.UpdateAccount)
	}
}

func (c *Config) Upgrades() {
	c.App.Get("/api/upgrades", c.UpgradeHandler.GetUpgrades)
	c.App.Get("/api/purchased-upgrades/:accountId", c.UpgradeHandler.GetPurchasedUpgrades)
	c.App.Post("/api/purchased-upgrade", c.UpgradeHandler.CreatePurchasedUpgrade)
	c.App.Put("/api/purchased-upgrade", c.UpgradeHandler.UpdatePurchasedUpgrade)
	c.App.Post("/api/upgrade/:accountId/purchase", c.Middleware.AuthMiddleware(c.JWTService), c.UpgradeHandler.BuyUpgrade)
}

func (c *Config) RandomEvents() {
	state := c.App.Group("/api/random-event-state", c.Middleware.AuthMiddleware(c.JWTService))
	{
		state.Get("/:accountId", c.RandomEventHandler.GetState)
		state.Put("/:accountId", c.RandomEventHandler.UpsertState)
	}
}

func (c *Config) Virtual() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/virtual-account/:accountId", auth, c.VirtualHandler.GetVirtualAccount)
	c.App.Post("/api/virtual-account/:accountId/transfer", auth, c.VirtualHandler.Transfer)
	c.App.Get("/api/virtual-offer/:accountId", auth, c.VirtualHandler.GetOffer)
	c.App.Post("/api/virtual-offer/:accountId/purchase", auth, c.VirtualHandler.PurchaseOffer)
	c.App.Get("/api/virtual-purchases/:accountId", auth, c.VirtualHandler.GetPurchases)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

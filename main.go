package main

import (
	"log"
	"os"

	"Banking-Clicker-Backend/cmd/config"
	migration "Banking-Clicker-Backend/cmd/database/migrate"
	"Banking-Clicker-Backend/cmd/database/rebalance"
	"Banking-Clicker-Backend/cmd/database/seed"
	"Banking-Clicker-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.SeedUpgrades(db); err != nil {
		log.Fatalf("failed to seed upgrades: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "rebalance" {
		if err := rebalance.Rebalance(db); err != nil {
			log.Fatalf("failed to rebalance upgrades: %v", err)
		}
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3001"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

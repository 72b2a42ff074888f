package migration

import (
	"fmt"
	"log"

	"Banking-Clicker-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.PlayerAccount{}); err != nil {
		log.Fatalf("Error migrating player account database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Upgrade{}); err != nil {
		log.Fatalf("Error migrating upgrade database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PurchasedUpgrade{}); err != nil {
		log.Fatalf("Error migrating purchased upgrade database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RandomEventState{}); err != nil {
		log.Fatalf("Error migrating random event state database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VirtualAccount{}); err != nil {
		log.Fatalf("Error migrating virtual account database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VirtualOfferState{}); err != nil {
		log.Fatalf("Error migrating virtual offer state database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.VirtualPurchase{}); err != nil {
		log.Fatalf("Error migrating virtual purchase database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

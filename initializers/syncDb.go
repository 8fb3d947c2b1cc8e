package initializers

import (
	"log"

	"github.com/shophub-store/shophub-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}

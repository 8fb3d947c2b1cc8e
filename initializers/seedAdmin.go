package initializers

import (
	"log"
	"os"

	"github.com/shophub-store/shophub-api/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account if ENABLE_ADMIN_SEED is set.
// In release mode an explicit ADMIN_SEED_PASSWORD is required.
func SeedAdmin() {
	if os.Getenv("ENABLE_ADMIN_SEED") != "true" {
		return
	}

	email := os.Getenv("ADMIN_SEED_EMAIL")
	if email == "" {
		email = "admin@shophub.com"
	}

	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		if os.Getenv("GIN_MODE") == "release" {
			log.Println("Admin seeding skipped: ADMIN_SEED_PASSWORD missing in release mode.")
			return
		}
		password = "admin123"
	}

	var existing models.User
	if result := DB.Where("email = ?", email).Find(&existing); result.Error != nil {
		log.Println("Admin seed lookup failed:", result.Error)
		return
	} else if result.RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("Admin seed hashing failed:", err)
		return
	}

	name := os.Getenv("ADMIN_SEED_NAME")
	if name == "" {
		name = "Admin"
	}

	admin := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Println("Admin seed creation failed:", err)
		return
	}
	log.Println("Seeded admin account:", email)
}

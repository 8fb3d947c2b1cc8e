package controllers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shophub-store/shophub-api/controllers"
	"github.com/shophub-store/shophub-api/initializers"
	"github.com/shophub-store/shophub-api/models"
	"github.com/shophub-store/shophub-api/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestApp wires the full router against a fresh in-memory database.
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	initializers.DB = db

	gin.SetMode(gin.TestMode)
	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)
	routes.UploadRoutes(server)
	return server
}

func createTestUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := controllers.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, initializers.DB.Create(&user).Error)

	token, err := controllers.GenerateJWT(user)
	require.NoError(t, err)
	return user, token
}

func createTestProduct(t *testing.T, name string, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Price:    price,
		Category: "general",
		Image:    "https://cdn.example.com/" + name + ".jpg",
		Stock:    stock,
	}
	require.NoError(t, initializers.DB.Create(&product).Error)
	return product
}

func performRequest(server *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func testShippingJSON() string {
	return `{
		"fullName": "Asha Verma",
		"email": "asha@example.com",
		"phone": "9876543210",
		"houseNo": "12A",
		"street": "MG Road",
		"landmark": "Near the clock tower",
		"nearBy": "City Mall",
		"city": "Pune",
		"district": "Pune",
		"state": "Maharashtra",
		"pincode": "411001"
	}`
}

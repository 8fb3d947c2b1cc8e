package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/initializers"
	"github.com/shophub-store/shophub-api/models"
	"github.com/shophub-store/shophub-api/utils"
	"gorm.io/datatypes"
)

// CreateOrder is the checkout transition: it persists the submitted cart
// snapshot as a new order in status Processing. The recorded total is the
// client-computed subtotal, taken as-is. There is no idempotency key, so a
// retried submission creates a second order.
func CreateOrder(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input models.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order := models.Order{
		UserID:       user.ID,
		Total:        input.Total,
		ShippingInfo: datatypes.NewJSONType(input.ShippingInfo),
		Status:       models.StatusProcessing,
	}
	for _, line := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	// Confirmation email is best effort; the order stands either way.
	if os.Getenv("SMTP_ADDRESS") != "" {
		if err := sendOrderConfirmationEmail(user, order); err != nil {
			log.Println("Error sending order confirmation email:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
		"orderId": order.ID,
	})
}

func sendOrderConfirmationEmail(user models.User, order models.Order) error {
	emailData := utils.EmailData{
		Name:    user.Name,
		OrderID: order.ID,
		Total:   order.Total,
		Items:   order.Items,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(user.Email, "Your ShopHub order confirmation", emailData, templatePath)
}

// GetMyOrders returns the caller's own orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetAllOrders returns every order in the store, newest first (admin).
func GetAllOrders(ctx *gin.Context) {
	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order. Customers may only read their own.
func GetOrder(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("Items").First(&order, orderId)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if order.UserID != user.ID && user.Role != "admin" {
		sendErrorResponse(ctx, http.StatusForbidden, "Not your order")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

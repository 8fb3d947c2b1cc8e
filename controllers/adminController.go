package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shophub-store/shophub-api/initializers"
	"github.com/shophub-store/shophub-api/models"
	"gorm.io/gorm"
)

// GetDashboardStats returns aggregate counts and the revenue sum over all
// orders, cancelled ones included.
func GetDashboardStats(ctx *gin.Context) {
	var stats models.StatsResponse

	if err := initializers.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		log.Println("Stats error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := initializers.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		log.Println("Stats error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := initializers.DB.Model(&models.User{}).Where("role = ?", "customer").Count(&stats.TotalUsers).Error; err != nil {
		log.Println("Stats error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := initializers.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		log.Println("Stats error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GetUsers lists every account without password hashes.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := initializers.DB.Order("created_at desc").Find(&users); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch users")
		return
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	ctx.JSON(http.StatusOK, publicUsers)
}

func DeleteUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id.")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.User{}, userId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted"})
}

// UpdateOrderStatus overwrites an order's status with any of the four values.
// There is no transition guard: Delivered back to Processing is accepted.
func UpdateOrderStatus(ctx *gin.Context) {
	var input models.UpdateOrderStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	// Fetch first: the MySQL driver reports changed rows, so a same-value
	// overwrite would look like a missing order if existence were inferred
	// from RowsAffected.
	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	if err := initializers.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder permanently removes an order in any state.
func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	// Hard delete: there is no soft-delete or audit trail for orders.
	if err := initializers.DB.Unscoped().Where("order_id = ?", orderId).Delete(&models.OrderItem{}).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	result := initializers.DB.Unscoped().Delete(&models.Order{}, orderId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order deleted successfully",
		"orderId": orderId,
	})
}

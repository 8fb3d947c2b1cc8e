package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ShopHub API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create customer account
- POST "/auth/login" - Sign in, returns token + user
- GET "/auth/profile" - Get own user record
- PUT "/auth/profile" - Update own contact/address fields

PRODUCTS
- GET "/products" - Get catalog
- GET "/products/:id" - Get product by ID
- POST "/products" - Create product (admin)
- PUT "/products/:id" - Update product (admin)
- DELETE "/products/:id" - Delete product (admin)

ORDERS
- POST "/orders" - Place an order (checkout)
- GET "/orders" - Get own orders, newest first
- GET "/orders/all" - Get all orders (admin)
- GET "/orders/:id" - Get order by ID

ADMIN
- GET "/admin/stats" - Aggregate counts + revenue
- GET "/admin/users" - List users
- DELETE "/admin/users/:id" - Delete user
- PUT "/admin/orders/:id" - Update order status
- DELETE "/admin/orders/:id" - Delete order

UPLOADS
- POST "/uploads/image" - Upload product image (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

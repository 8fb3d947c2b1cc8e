package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. The status field is a free-form overwrite: an admin may set
// any of these regardless of the current value.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	HouseNo  string `json:"houseNo"`
	Street   string `json:"street"`
	Landmark string `json:"landmark"`
	NearBy   string `json:"nearBy"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type Order struct {
	gorm.Model
	UserID       uint                             `json:"userId"`
	Items        []OrderItem                      `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total        float64                          `json:"total"`
	ShippingInfo datatypes.JSONType[ShippingInfo] `json:"shippingInfo"`
	Status       string                           `json:"status" gorm:"default:Processing"`
}

// OrderItem is a denormalized snapshot of the product at purchase time.
// ProductID is kept for reference only and is never joined back to the live
// Product record, so later product edits cannot alter placed orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID *uint   `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderLineInput struct {
	ProductID *uint   `json:"productId"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
}

// CreateOrderInput is the checkout payload. Total is the client-computed raw
// subtotal and is recorded as-is; the server does not recompute it.
type CreateOrderInput struct {
	Items        []OrderLineInput `json:"items" binding:"required,min=1,dive"`
	Total        float64          `json:"total" binding:"gte=0"`
	ShippingInfo ShippingInfo     `json:"shippingInfo" binding:"required"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Processing Shipped Delivered Cancelled"`
}

type StatsResponse struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

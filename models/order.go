package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending        = "Pending"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

const (
	PaymentCOD    = "COD"
	PaymentOnline = "Online"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	return method == PaymentCOD || method == PaymentOnline
}

// Order is created once at checkout and never recomputed. Only Status (and
// UpdatedAt) change after creation; items and totalAmount stay frozen even
// if the menu changes later.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	DeliveryAddress string             `bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderItem is a snapshot of a food item at checkout time.
type OrderItem struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Image    string             `bson:"image" json:"image"`
}

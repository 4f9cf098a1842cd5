package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is the per-user pending order. One document per user; the document
// survives checkout and clearing, only its items are replaced.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem holds only the food reference and a quantity. Prices and names
// are joined against the foods collection at read time, never stored here.
type CartItem struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

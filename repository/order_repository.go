package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	client *mongo.Client
	orders *mongo.Collection
	carts  *mongo.Collection
}

func NewOrderRepository(client *mongo.Client, orders, carts *mongo.Collection) *OrderRepository {
	return &OrderRepository{client: client, orders: orders, carts: carts}
}

// Place inserts the order and clears the source cart as one transaction.
// The cart-clear only matches a cart that still has items, so a concurrent
// double-submission of checkout aborts instead of creating a second order.
// The clear replaces the whole item list, last writer wins: an item added
// between the caller's snapshot read and this transaction is discarded
// with the rest, not carried into the order.
func (r *OrderRepository) Place(ctx context.Context, order *models.Order) (*models.Order, error) {
	sess, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.carts.UpdateOne(sc,
			bson.M{"userId": order.UserID, "items.0": bson.M{"$exists": true}},
			bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperrors.EmptyCart("cart is empty")
		}

		if _, err := r.orders.InsertOne(sc, order); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.orders.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the order's status and returns the updated document, or
// nil if no such order exists. Status values are validated by the caller.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*models.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err := r.orders.FindOneAndUpdate(ctx, bson.M{"_id": orderID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStore persists orders. Place must create the order and clear the
// source cart as one transaction; when the cart is already empty it fails
// with an empty_cart error instead of inserting, which is what makes a
// duplicated checkout submission safe.
type OrderStore interface {
	Place(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*models.Order, error)
}

// UserDirectory resolves user identities for the admin order listing.
type UserDirectory interface {
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
}

// OrderUser is the owning-user identity attached to admin listings.
type OrderUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

type OrderWithUser struct {
	models.Order
	User OrderUser `json:"user"`
}

type OrderService struct {
	orders  OrderStore
	cart    CartStore
	catalog Catalog
	users   UserDirectory
}

func NewOrderService(orders OrderStore, cart CartStore, catalog Catalog, users UserDirectory) *OrderService {
	return &OrderService{orders: orders, cart: cart, catalog: catalog, users: users}
}

// Checkout converts the user's cart into an immutable order snapshot. Each
// line item's current catalog price and name are frozen into the order, the
// total is computed once, and the cart is cleared in the same transaction.
// Availability is deliberately not re-checked here; an item that went
// unavailable after being added is still snapshotted.
func (s *OrderService) Checkout(ctx context.Context, userID primitive.ObjectID, deliveryAddress, paymentMethod string) (*models.Order, error) {
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return nil, apperrors.Validation("delivery address is required")
	}

	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, apperrors.Validation("invalid payment method")
	}

	cart, err := s.cart.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.EmptyCart("cart is empty")
	}

	var items []models.OrderItem
	var totalAmount float64
	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			// A quantity a concurrent decrement drove to zero or below must
			// never reach the snapshot.
			continue
		}
		food, err := s.catalog.Resolve(ctx, item.FoodID)
		if err != nil {
			return nil, err
		}
		if food == nil {
			// The food was deleted between add and checkout; it contributes
			// nothing, same as in the cart total.
			continue
		}

		items = append(items, models.OrderItem{
			FoodID:   food.ID,
			Name:     food.Name,
			Price:    food.Price,
			Quantity: item.Quantity,
			Image:    food.Image,
		})
		totalAmount += food.Price * float64(item.Quantity)
	}
	if len(items) == 0 {
		return nil, apperrors.EmptyCart("cart has no orderable items")
	}

	now := time.Now()
	order := &models.Order{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
		Status:          models.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return s.orders.Place(ctx, order)
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first, with the owning user's
// identity attached for administrative review.
func (s *OrderService) ListAll(ctx context.Context) ([]OrderWithUser, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cache := map[primitive.ObjectID]*models.User{}
	result := make([]OrderWithUser, 0, len(orders))
	for _, order := range orders {
		user, ok := cache[order.UserID]
		if !ok {
			user, err = s.users.FindByID(ctx, order.UserID)
			if err != nil {
				return nil, err
			}
			cache[order.UserID] = user
		}

		entry := OrderWithUser{Order: order, User: OrderUser{ID: order.UserID}}
		if user != nil {
			entry.User.Name = user.Name
			entry.User.Email = user.Email
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *OrderService) Get(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("order not found")
	}
	return order, nil
}

// SetStatus moves an order to any recognized status. Transitions are not
// constrained beyond enum membership; an administrator may jump states or
// resurrect a cancelled order. Tightening this to a transition table is a
// product policy decision, not a bug fix.
func (s *OrderService) SetStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*models.Order, error) {
	if !models.IsValidStatus(status) {
		return nil, apperrors.Validation("invalid status value")
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFound("order not found")
	}
	return order, nil
}

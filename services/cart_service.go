package services

import (
	"context"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog is the read-only menu collaborator. Resolve returns nil when the
// food item does not exist.
type Catalog interface {
	Resolve(ctx context.Context, foodID primitive.ObjectID) (*models.Food, error)
}

// CartStore persists per-user carts. ApplyDelta must be atomic per line
// item so concurrent adds from the same user cannot lose updates.
type CartStore interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	ApplyDelta(ctx context.Context, userID, foodID primitive.ObjectID, delta int) error
	RemoveItem(ctx context.Context, userID, foodID primitive.ObjectID) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

// CartView is the catalog-joined cart a caller gets back from every read
// and mutation, so clients never trust their own echoed quantities.
type CartView struct {
	UserID primitive.ObjectID `json:"userId"`
	Items  []CartItemView     `json:"items"`
	Total  float64            `json:"total"`
}

type CartItemView struct {
	FoodID      primitive.ObjectID `json:"foodId"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Image       string             `json:"image"`
	IsAvailable bool               `json:"isAvailable"`
	Quantity    int                `json:"quantity"`
	Subtotal    float64            `json:"subtotal"`
}

type CartService struct {
	store   CartStore
	catalog Catalog
}

func NewCartService(store CartStore, catalog Catalog) *CartService {
	return &CartService{store: store, catalog: catalog}
}

// Get returns the user's cart joined against the catalog. Line items whose
// food no longer resolves are skipped, contributing zero to the total.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) (*CartView, error) {
	cart, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, cart)
}

// AddOrAdjust applies a quantity delta to the line item for foodID. A
// positive delta on a missing item inserts it; a result of zero or below
// removes it. Availability is not checked here, only existence.
func (s *CartService) AddOrAdjust(ctx context.Context, userID, foodID primitive.ObjectID, delta int) (*CartView, error) {
	if delta == 0 {
		return nil, apperrors.Validation("quantity must be a non-zero integer")
	}

	food, err := s.catalog.Resolve(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperrors.NotFound("food item not found")
	}

	if err := s.store.ApplyDelta(ctx, userID, foodID, delta); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove deletes the line item for foodID outright. Removing an item that
// is not in the cart succeeds and changes nothing.
func (s *CartService) Remove(ctx context.Context, userID, foodID primitive.ObjectID) (*CartView, error) {
	if err := s.store.RemoveItem(ctx, userID, foodID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear empties the cart. The cart itself is retained.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return s.store.Clear(ctx, userID)
}

func (s *CartService) join(ctx context.Context, cart *models.Cart) (*CartView, error) {
	view := &CartView{
		UserID: cart.UserID,
		Items:  []CartItemView{},
	}

	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			// Transient state while a concurrent decrement is being
			// compacted out of the document.
			continue
		}
		food, err := s.catalog.Resolve(ctx, item.FoodID)
		if err != nil {
			return nil, err
		}
		if food == nil {
			// Dangling reference, the food was deleted after being added.
			continue
		}

		subtotal := food.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartItemView{
			FoodID:      food.ID,
			Name:        food.Name,
			Price:       food.Price,
			Image:       food.Image,
			IsAvailable: food.IsAvailable,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		})
		view.Total += subtotal
	}

	return view, nil
}

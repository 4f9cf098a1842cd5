package services

import (
	"context"
	"testing"

	"github.com/sakshik2023/food-rush/apperrors"
	"github.com/sakshik2023/food-rush/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- In-memory fakes ---

type fakeCatalog struct {
	foods map[primitive.ObjectID]models.Food
}

func newFakeCatalog(foods ...models.Food) *fakeCatalog {
	fc := &fakeCatalog{foods: map[primitive.ObjectID]models.Food{}}
	for _, f := range foods {
		fc.foods[f.ID] = f
	}
	return fc
}

func (fc *fakeCatalog) Resolve(_ context.Context, foodID primitive.ObjectID) (*models.Food, error) {
	f, ok := fc.foods[foodID]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

type fakeCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (s *fakeCartStore) ensure(userID primitive.ObjectID) *models.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		s.carts[userID] = cart
	}
	return cart
}

func (s *fakeCartStore) GetByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	items := append([]models.CartItem(nil), cart.Items...)
	return &models.Cart{UserID: userID, Items: items}, nil
}

func (s *fakeCartStore) ApplyDelta(_ context.Context, userID, foodID primitive.ObjectID, delta int) error {
	cart := s.ensure(userID)
	for i := range cart.Items {
		if cart.Items[i].FoodID == foodID {
			cart.Items[i].Quantity += delta
			if cart.Items[i].Quantity <= 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			}
			return nil
		}
	}
	if delta > 0 {
		cart.Items = append(cart.Items, models.CartItem{FoodID: foodID, Quantity: delta})
	}
	return nil
}

func (s *fakeCartStore) RemoveItem(_ context.Context, userID, foodID primitive.ObjectID) error {
	cart := s.ensure(userID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.FoodID != foodID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return nil
}

func (s *fakeCartStore) Clear(_ context.Context, userID primitive.ObjectID) error {
	s.ensure(userID).Items = []models.CartItem{}
	return nil
}

func errorKind(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Kind
}

// --- Tests ---

func TestGetReturnsEmptyCartForNewUser(t *testing.T) {
	svc := NewCartService(newFakeCartStore(), newFakeCatalog())
	userID := primitive.NewObjectID()

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, view.UserID)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestAddOrAdjustJoinsCatalogDetails(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Classic Smash Burger", Price: 179, IsAvailable: true}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(burger))
	userID := primitive.NewObjectID()

	view, err := svc.AddOrAdjust(context.Background(), userID, burger.ID, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Classic Smash Burger", view.Items[0].Name)
	assert.Equal(t, 179.0, view.Items[0].Price)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 358.0, view.Items[0].Subtotal)
}

func TestAddOrAdjustUnknownFood(t *testing.T) {
	svc := NewCartService(newFakeCartStore(), newFakeCatalog())

	_, err := svc.AddOrAdjust(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 1)
	assert.Equal(t, apperrors.KindNotFound, errorKind(t, err))
}

func TestAddOrAdjustZeroDelta(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 100}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(burger))

	_, err := svc.AddOrAdjust(context.Background(), primitive.NewObjectID(), burger.ID, 0)
	assert.Equal(t, apperrors.KindValidation, errorKind(t, err))
}

func TestQuantityConvergence(t *testing.T) {
	tests := []struct {
		name    string
		deltas  []int
		wantQty int // 0 means the item must be absent
	}{
		{"repeated adds accumulate", []int{1, 1, 1}, 3},
		{"decrement partway", []int{3, -1}, 2},
		{"decrement to zero removes", []int{2, -2}, 0},
		{"overshoot below zero removes", []int{1, -5}, 0},
		{"negative on absent item is a no-op", []int{-3}, 0},
		{"re-add after removal", []int{2, -2, 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fries := models.Food{ID: primitive.NewObjectID(), Name: "Fries", Price: 89, IsAvailable: true}
			svc := NewCartService(newFakeCartStore(), newFakeCatalog(fries))
			userID := primitive.NewObjectID()

			var view *CartView
			var err error
			for _, d := range tt.deltas {
				view, err = svc.AddOrAdjust(context.Background(), userID, fries.ID, d)
				require.NoError(t, err)
			}

			if tt.wantQty == 0 {
				assert.Empty(t, view.Items)
			} else {
				require.Len(t, view.Items, 1)
				assert.Equal(t, tt.wantQty, view.Items[0].Quantity)
			}
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 179, IsAvailable: true}
	shake := models.Food{ID: primitive.NewObjectID(), Name: "Shake", Price: 129, IsAvailable: true}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(burger, shake))
	userID := primitive.NewObjectID()

	_, err := svc.AddOrAdjust(context.Background(), userID, burger.ID, 1)
	require.NoError(t, err)

	// Remove an item that was never added, twice. Both calls succeed and
	// the cart is untouched.
	for i := 0; i < 2; i++ {
		view, err := svc.Remove(context.Background(), userID, shake.ID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, burger.ID, view.Items[0].FoodID)
	}
}

func TestTotalComputation(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 179, IsAvailable: true}
	fries := models.Food{ID: primitive.NewObjectID(), Name: "Fries", Price: 99, IsAvailable: true}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(burger, fries))
	userID := primitive.NewObjectID()

	_, err := svc.AddOrAdjust(context.Background(), userID, burger.ID, 2)
	require.NoError(t, err)
	view, err := svc.AddOrAdjust(context.Background(), userID, fries.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 457.0, view.Total)
}

func TestDanglingReferenceContributesZero(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 179, IsAvailable: true}
	doomed := models.Food{ID: primitive.NewObjectID(), Name: "Doomed", Price: 500, IsAvailable: true}
	catalog := newFakeCatalog(burger, doomed)
	svc := NewCartService(newFakeCartStore(), catalog)
	userID := primitive.NewObjectID()

	_, err := svc.AddOrAdjust(context.Background(), userID, burger.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddOrAdjust(context.Background(), userID, doomed.ID, 3)
	require.NoError(t, err)

	delete(catalog.foods, doomed.ID)

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, burger.ID, view.Items[0].FoodID)
	assert.Equal(t, 179.0, view.Total)
}

func TestNonPositiveQuantityHiddenFromView(t *testing.T) {
	// The delta increment and the compaction of emptied lines are two
	// separate writes, so a read between them can observe a persisted
	// quantity of zero or below. The joined view must not render it.
	pizza := models.Food{ID: primitive.NewObjectID(), Name: "Margherita", Price: 249, IsAvailable: true}
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 179, IsAvailable: true}
	store := newFakeCartStore()
	svc := NewCartService(store, newFakeCatalog(pizza, burger))
	userID := primitive.NewObjectID()

	store.carts[userID] = &models.Cart{UserID: userID, Items: []models.CartItem{
		{FoodID: pizza.ID, Quantity: 0},
		{FoodID: burger.ID, Quantity: 2},
	}}

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, burger.ID, view.Items[0].FoodID)
	assert.Equal(t, 358.0, view.Total)
}

func TestUnavailableItemCanStillBeAdded(t *testing.T) {
	soldOut := models.Food{ID: primitive.NewObjectID(), Name: "Sold Out", Price: 229, IsAvailable: false}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(soldOut))

	view, err := svc.AddOrAdjust(context.Background(), primitive.NewObjectID(), soldOut.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.False(t, view.Items[0].IsAvailable)
}

func TestClearEmptiesButKeepsCart(t *testing.T) {
	burger := models.Food{ID: primitive.NewObjectID(), Name: "Burger", Price: 179, IsAvailable: true}
	svc := NewCartService(newFakeCartStore(), newFakeCatalog(burger))
	userID := primitive.NewObjectID()

	_, err := svc.AddOrAdjust(context.Background(), userID, burger.ID, 2)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(context.Background(), userID))

	view, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)

	// The cart is still usable after clearing.
	view, err = svc.AddOrAdjust(context.Background(), userID, burger.ID, 1)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendycorner/storefront-golang/internal/cart"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/payment"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

const testDelay = time.Millisecond

func testShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FirstName: "Asha",
		LastName:  "Shrestha",
		Address:   "12 Durbar Marg",
		City:      "Kathmandu",
		State:     "Bagmati",
		ZipCode:   "44600",
		Country:   "Nepal",
		Email:     "asha@example.com",
		Phone:     "9800000000",
	}
}

func newFlow(t *testing.T) (*Flow, *cart.Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemory()
	c := cart.New(mem)
	c.AddToCart(models.Product{ID: "t1", Name: "Classic Cotton Tee", Price: 1299}, "M", 2)

	f, err := Begin(c, mem, testDelay, testDelay)
	require.NoError(t, err)
	return f, c, mem
}

func TestBeginRejectsEmptyCart(t *testing.T) {
	mem := storage.NewMemory()
	c := cart.New(mem)

	_, err := Begin(c, mem, testDelay, testDelay)
	assert.ErrorIs(t, err, ErrEmptyCart, "an empty cart must never reach step 1")
}

func TestForwardRequiresCompletedStep(t *testing.T) {
	f, _, _ := newFlow(t)

	// Step 1 without shipping info.
	assert.ErrorIs(t, f.Next(), ErrIncompleteStep)

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	assert.Equal(t, StepPaymentMethod, f.Step())

	// Step 2 without a method.
	assert.ErrorIs(t, f.Next(), ErrIncompleteStep)

	require.NoError(t, f.SelectPaymentMethod(models.MethodCashOnDelivery))
	require.NoError(t, f.Next())
	assert.Equal(t, StepPaymentDetails, f.Step())

	// No forward past step 3; PlaceOrder is the only exit.
	assert.ErrorIs(t, f.Next(), ErrAtLastStep)
}

func TestShippingValidation(t *testing.T) {
	f, _, _ := newFlow(t)

	missing := testShipping()
	missing.City = ""
	assert.Error(t, f.SetShipping(missing))

	badEmail := testShipping()
	badEmail.Email = "not-an-email"
	assert.Error(t, f.SetShipping(badEmail))

	assert.Nil(t, f.Shipping(), "invalid submissions must not stick")
	require.NoError(t, f.SetShipping(testShipping()))
	require.NotNil(t, f.Shipping())
}

func TestBackTransitions(t *testing.T) {
	f, _, _ := newFlow(t)

	assert.ErrorIs(t, f.Back(), ErrAtFirstStep)

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.Back())
	assert.Equal(t, StepShipping, f.Step())
}

func TestCashOnDeliveryOrder(t *testing.T) {
	f, c, mem := newFlow(t)

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectPaymentMethod(models.MethodCashOnDelivery))
	assert.Nil(t, f.Simulator(), "cash on delivery bypasses the stage machine")
	require.NoError(t, f.Next())

	order, err := f.PlaceOrder()
	require.NoError(t, err)

	// Order record: snapshot, totals, number.
	assert.True(t, strings.HasPrefix(order.OrderNumber, "TC-"))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 2598.0, order.Subtotal)
	assert.Equal(t, 100.0, order.DeliveryFee)
	assert.Equal(t, 337.74, order.Tax)
	assert.Equal(t, 3035.74, order.Total)
	assert.Equal(t, models.MethodCashOnDelivery, order.PaymentMethod)

	// Terminal effects: cart cleared, order persisted, flow finished.
	assert.True(t, c.IsEmpty())
	var saved models.Order
	require.NoError(t, mem.Get(storage.KeyLastOrder, &saved))
	assert.Equal(t, order.OrderNumber, saved.OrderNumber)
	assert.True(t, f.Placed())

	_, err = f.PlaceOrder()
	assert.ErrorIs(t, err, ErrOrderPlaced)
}

func TestGatewayOrderRequiresConfirmedPayment(t *testing.T) {
	f, _, _ := newFlow(t)
	ctx := context.Background()

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectPaymentMethod(models.MethodEsewa))
	require.NoError(t, f.Next())

	// Not even submitted yet.
	_, err := f.PlaceOrder()
	assert.ErrorIs(t, err, ErrPaymentPending)

	sim := f.Simulator()
	require.NotNil(t, sim)
	require.NoError(t, sim.SubmitLogin(ctx))

	// Authorized but not confirmed.
	_, err = f.PlaceOrder()
	assert.ErrorIs(t, err, ErrPaymentPending)

	_, err = sim.Confirm(ctx)
	require.NoError(t, err)

	order, err := f.PlaceOrder()
	require.NoError(t, err)
	assert.Equal(t, models.MethodEsewa, order.PaymentMethod)
}

func TestCartChangedAfterAuthorizationBlocksOrder(t *testing.T) {
	f, c, _ := newFlow(t)
	ctx := context.Background()

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectPaymentMethod(models.MethodEsewa))
	require.NoError(t, f.Next())

	sim := f.Simulator()
	require.NoError(t, sim.SubmitLogin(ctx))
	_, err := sim.Confirm(ctx)
	require.NoError(t, err)

	// The cart endpoints stay usable mid-flow; grow the cart after the
	// gateway confirmed.
	c.AddToCart(models.Product{ID: "s1", Name: "Classic Sneakers", Price: 4999}, "", 1)

	_, err = f.PlaceOrder()
	assert.ErrorIs(t, err, ErrStaleAuthorization, "a confirmed amount that no longer matches the total must not place")

	// Re-selecting the method authorizes the new total from scratch.
	require.NoError(t, f.SelectPaymentMethod(models.MethodEsewa))
	assert.Equal(t, payment.StageInput, f.PaymentStage())
	assert.Equal(t, f.Summary().Total, f.Simulator().Amount())
}

func TestSimulatorAuthorizesCurrentTotal(t *testing.T) {
	f, _, _ := newFlow(t)

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectPaymentMethod(models.MethodPayPal))

	// subtotal 2598 -> fee 100, tax 337.74, total 3035.74
	assert.Equal(t, 3035.74, f.Simulator().Amount())
}

func TestReselectingMethodResetsPaymentStage(t *testing.T) {
	f, _, _ := newFlow(t)
	ctx := context.Background()

	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectPaymentMethod(models.MethodEsewa))
	require.NoError(t, f.Simulator().SubmitLogin(ctx))
	assert.Equal(t, payment.StageAuthorize, f.PaymentStage())

	require.NoError(t, f.SelectPaymentMethod(models.MethodPayPal))
	assert.Equal(t, payment.StageInput, f.PaymentStage(), "a new method selection starts a fresh machine")
}

func TestSelectMethodRejectedBeforeStepTwo(t *testing.T) {
	f, _, _ := newFlow(t)
	assert.ErrorIs(t, f.SelectPaymentMethod(models.MethodPayPal), ErrIncompleteStep)
}

func TestUnknownPaymentMethodRejected(t *testing.T) {
	f, _, _ := newFlow(t)
	require.NoError(t, f.SetShipping(testShipping()))
	require.NoError(t, f.Next())
	assert.Error(t, f.SelectPaymentMethod("barter"))
}

func TestCartEmptiedMidFlowBlocksProgress(t *testing.T) {
	f, c, _ := newFlow(t)

	require.NoError(t, f.SetShipping(testShipping()))
	c.Clear()
	assert.ErrorIs(t, f.Next(), ErrEmptyCart)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendycorner/storefront-golang/internal/checkout"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/payment"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

//
// --- Checkout Flow ---
//

// BeginCheckout starts (or restarts) the wizard. An empty cart bypasses the
// flow entirely: the client gets the empty-cart view, never step 1.
func (h *Handlers) BeginCheckout(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	flow, err := checkout.Begin(h.Cart, h.Storage, h.PaymentLoginDelay, h.PaymentConfirmDelay)
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flow = flow
	h.flowState(c, http.StatusCreated)
}

// GetCheckout reports the wizard state for the progress display.
func (h *Handlers) GetCheckout(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	h.flowState(c, http.StatusOK)
}

// SetShipping submits the typed shipping form for step 1.
func (h *Handlers) SetShipping(c *gin.Context) {
	var info models.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	if err := h.flow.SetShipping(info); err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flowState(c, http.StatusOK)
}

func (h *Handlers) CheckoutNext(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	if err := h.flow.Next(); err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flowState(c, http.StatusOK)
}

func (h *Handlers) CheckoutBack(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	if err := h.flow.Back(); err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flowState(c, http.StatusOK)
}

// SelectPaymentMethodInput picks one of the supported methods at step 2.
type SelectPaymentMethodInput struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

func (h *Handlers) SelectPaymentMethod(c *gin.Context) {
	var input SelectPaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}
	if err := h.flow.SelectPaymentMethod(input.Method); err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flowState(c, http.StatusOK)
}

// SubmitPaymentLogin runs the input -> authorize transition. The credential
// body is typed per selected method and required-checked before the
// simulator is invoked; the simulated gateway then accepts any values.
func (h *Handlers) SubmitPaymentLogin(c *gin.Context) {
	sim, ok := h.paymentSimulator(c)
	if !ok {
		return
	}

	switch sim.Method() {
	case models.MethodCreditCard:
		var creds models.CardDetails
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card details: " + err.Error()})
			return
		}
	case models.MethodPayPal:
		var creds models.PayPalCredentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PayPal credentials: " + err.Error()})
			return
		}
	case models.MethodEsewa:
		var creds models.EsewaCredentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid eSewa credentials: " + err.Error()})
			return
		}
	}

	// The simulated round trip runs outside h.mu so other requests are not
	// blocked behind the artificial delay.
	if err := sim.SubmitLogin(c.Request.Context()); err != nil {
		h.paymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stage":  sim.Stage(),
		"amount": sim.Amount(),
	})
}

// ConfirmPayment runs the authorize -> confirmed transition and returns the
// synthetic transaction id with the authorized amount.
func (h *Handlers) ConfirmPayment(c *gin.Context) {
	sim, ok := h.paymentSimulator(c)
	if !ok {
		return
	}

	txnID, err := sim.Confirm(c.Request.Context())
	if err != nil {
		h.paymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stage":         sim.Stage(),
		"transactionId": txnID,
		"amount":        sim.Amount(),
	})
}

// PlaceOrder is the terminal transition: build the order, persist it, clear
// the cart, end the flow.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return
	}

	order, err := h.flow.PlaceOrder()
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	h.flow = nil

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order Placed Successfully!",
		"order":   order,
	})
}

// GetLastOrder serves the confirmation view. Navigating here without a
// completed order is a not-found, not an error.
func (h *Handlers) GetLastOrder(c *gin.Context) {
	var order models.Order
	err := h.Storage.Get(storage.KeyLastOrder, &order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No completed order found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// paymentSimulator fetches the live simulator for the details step. It
// writes the error response itself when the flow is not ready.
func (h *Handlers) paymentSimulator(c *gin.Context) (*payment.Simulator, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.flow == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout in progress"})
		return nil, false
	}
	if h.flow.Step() != checkout.StepPaymentDetails {
		c.JSON(http.StatusConflict, gin.H{"error": "Not at the payment details step"})
		return nil, false
	}
	sim := h.flow.Simulator()
	if sim == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Cash on delivery requires no payment authorization"})
		return nil, false
	}
	return sim, true
}

// flowState renders the wizard state. Callers hold h.mu.
func (h *Handlers) flowState(c *gin.Context, status int) {
	resp := gin.H{
		"step":        h.flow.Step(),
		"shippingSet": h.flow.Shipping() != nil,
		"summary":     h.flow.Summary(),
	}
	if m := h.flow.PaymentMethod(); m != "" {
		resp["paymentMethod"] = m
	}
	if stage := h.flow.PaymentStage(); stage != "" {
		resp["paymentStage"] = stage
	}
	c.JSON(status, resp)
}

// checkoutError maps flow errors onto HTTP statuses.
func (h *Handlers) checkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "emptyCart": true})
	case errors.Is(err, checkout.ErrIncompleteStep),
		errors.Is(err, checkout.ErrNoPaymentMethod),
		errors.Is(err, checkout.ErrPaymentPending),
		errors.Is(err, checkout.ErrStaleAuthorization):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrAtFirstStep), errors.Is(err, checkout.ErrAtLastStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrOrderPlaced):
		c.JSON(http.StatusGone, gin.H{"error": "This checkout has already completed"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// paymentError maps simulator errors onto HTTP statuses.
func (h *Handlers) paymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "A payment request is already being processed"})
	case errors.Is(err, payment.ErrWrongStage):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Payment request cancelled"})
	}
}

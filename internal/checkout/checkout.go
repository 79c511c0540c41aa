// Package checkout drives the three-step wizard: shipping info, payment
// method selection, payment details, then the terminal order placement. The
// flow lives only in memory; a restart mid-flow loses the in-progress form
// state by design, and only the cart survives.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trendycorner/storefront-golang/internal/cart"
	"github.com/trendycorner/storefront-golang/internal/models"
	"github.com/trendycorner/storefront-golang/internal/payment"
	"github.com/trendycorner/storefront-golang/internal/pricing"
	"github.com/trendycorner/storefront-golang/internal/storage"
)

// Step is the wizard position. The terminal state is tracked separately via
// Placed, matching the original flow where "order placed" leaves the wizard.
type Step int

const (
	StepShipping       Step = 1
	StepPaymentMethod  Step = 2
	StepPaymentDetails Step = 3
)

var (
	// ErrEmptyCart guards entry and every transition: an empty cart
	// bypasses the wizard entirely.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrIncompleteStep rejects a forward transition while the current
	// step's required fields are missing.
	ErrIncompleteStep = errors.New("checkout: current step is incomplete")

	// ErrAtFirstStep rejects Back from step 1.
	ErrAtFirstStep = errors.New("checkout: already at the first step")

	// ErrAtLastStep rejects Next from step 3; the only way forward from
	// there is PlaceOrder.
	ErrAtLastStep = errors.New("checkout: already at the last step")

	// ErrNoPaymentMethod is returned when a payment action needs a
	// selected method first.
	ErrNoPaymentMethod = errors.New("checkout: no payment method selected")

	// ErrPaymentPending rejects order placement before the simulated
	// gateway has confirmed.
	ErrPaymentPending = errors.New("checkout: payment not confirmed yet")

	// ErrStaleAuthorization rejects placement when the cart changed after
	// the gateway authorized, so the confirmed amount no longer matches the
	// order total. Re-selecting the method authorizes the new total.
	ErrStaleAuthorization = errors.New("checkout: authorized amount no longer matches the order total")

	// ErrOrderPlaced marks a finished flow; no further actions apply.
	ErrOrderPlaced = errors.New("checkout: order already placed")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Flow is one in-progress checkout over a cart. It is not safe for
// concurrent use of the transition methods; the owning handler serializes
// access. Payment submission runs outside the flow's critical path and is
// guarded by the simulator itself.
type Flow struct {
	cart    *cart.Store
	storage storage.Store

	loginDelay   time.Duration
	confirmDelay time.Duration

	step     Step
	shipping *models.ShippingInfo
	method   models.PaymentMethod
	sim      *payment.Simulator
	placed   bool
}

// Begin starts a flow at the shipping step. It fails with ErrEmptyCart when
// there is nothing to check out. The delays parameterize the payment
// simulator; zero values select its defaults.
func Begin(c *cart.Store, st storage.Store, loginDelay, confirmDelay time.Duration) (*Flow, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Flow{
		cart:         c,
		storage:      st,
		loginDelay:   loginDelay,
		confirmDelay: confirmDelay,
		step:         StepShipping,
	}, nil
}

// Step returns the wizard position.
func (f *Flow) Step() Step { return f.step }

// Placed reports whether the flow reached its terminal state.
func (f *Flow) Placed() bool { return f.placed }

// Shipping returns the submitted shipping info, or nil.
func (f *Flow) Shipping() *models.ShippingInfo { return f.shipping }

// PaymentMethod returns the selected method, empty before selection.
func (f *Flow) PaymentMethod() models.PaymentMethod { return f.method }

// PaymentStage reports the simulator stage, or empty for methods that
// bypass it (cash on delivery, or nothing selected yet).
func (f *Flow) PaymentStage() payment.Stage {
	if f.sim == nil {
		return ""
	}
	return f.sim.Stage()
}

// Summary recomputes the order totals from the live cart.
func (f *Flow) Summary() pricing.Summary {
	return pricing.Compute(f.cart.Subtotal())
}

// SetShipping validates and stores the typed shipping form. The form may be
// resubmitted while the flow is open; it only gates the step-1 transition.
func (f *Flow) SetShipping(info models.ShippingInfo) error {
	if f.placed {
		return ErrOrderPlaced
	}
	if err := validate.Struct(info); err != nil {
		return fmt.Errorf("checkout: invalid shipping info: %w", err)
	}
	f.shipping = &info
	return nil
}

// Next advances one step. The current step's required fields must be
// present; no step is skippable.
func (f *Flow) Next() error {
	if f.placed {
		return ErrOrderPlaced
	}
	if f.cart.IsEmpty() {
		return ErrEmptyCart
	}
	switch f.step {
	case StepShipping:
		if f.shipping == nil {
			return ErrIncompleteStep
		}
	case StepPaymentMethod:
		if f.method == "" {
			return ErrIncompleteStep
		}
	case StepPaymentDetails:
		return ErrAtLastStep
	}
	f.step++
	return nil
}

// Back moves one step back. Always allowed from steps 2-3.
func (f *Flow) Back() error {
	if f.placed {
		return ErrOrderPlaced
	}
	if f.step == StepShipping {
		return ErrAtFirstStep
	}
	f.step--
	return nil
}

// SelectPaymentMethod picks how to pay and resets the payment machine:
// gateway methods get a fresh simulator over the current total, cash on
// delivery gets none.
func (f *Flow) SelectPaymentMethod(m models.PaymentMethod) error {
	if f.placed {
		return ErrOrderPlaced
	}
	if !models.IsValidPaymentMethod(m) {
		return fmt.Errorf("checkout: unknown payment method %q", m)
	}
	if f.step < StepPaymentMethod {
		return ErrIncompleteStep
	}

	f.method = m
	f.sim = nil
	if m != models.MethodCashOnDelivery {
		sim, err := payment.NewSimulator(m, f.Summary().Total, f.loginDelay, f.confirmDelay)
		if err != nil {
			return err
		}
		f.sim = sim
	}
	return nil
}

// Simulator exposes the live payment machine for the details step, or nil
// for cash on delivery.
func (f *Flow) Simulator() *payment.Simulator {
	return f.sim
}

// PlaceOrder is the terminal transition. It requires the details step with
// a confirmed payment (cash on delivery is exempt), then builds the order
// record, persists it, clears the cart and ends the flow.
func (f *Flow) PlaceOrder() (models.Order, error) {
	if f.placed {
		return models.Order{}, ErrOrderPlaced
	}
	if f.cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}
	if f.step != StepPaymentDetails {
		return models.Order{}, ErrIncompleteStep
	}
	if f.method == "" {
		return models.Order{}, ErrNoPaymentMethod
	}
	summary := f.Summary()
	if f.sim != nil {
		if f.sim.Stage() != payment.StageConfirmed {
			return models.Order{}, ErrPaymentPending
		}
		// The cart endpoints stay usable mid-flow, so the total may have
		// moved since the gateway authorized.
		if f.sim.Amount() != summary.Total {
			return models.Order{}, ErrStaleAuthorization
		}
	}

	now := time.Now()
	order := models.Order{
		OrderNumber:       fmt.Sprintf("TC-%d", now.UnixMilli()),
		Items:             f.cart.Lines(),
		ShippingInfo:      *f.shipping,
		PaymentMethod:     f.method,
		Subtotal:          summary.Subtotal,
		DeliveryFee:       summary.DeliveryFee,
		Tax:               summary.Tax,
		Total:             summary.Total,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(7 * 24 * time.Hour),
	}

	if err := f.storage.Set(storage.KeyLastOrder, order); err != nil {
		log.Printf("WARNING: failed to persist order %s: %v", order.OrderNumber, err)
	}
	f.cart.Clear()
	f.placed = true
	return order, nil
}

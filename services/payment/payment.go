// File: services/payment/payment.go
package payment

import (
	"encoding/json"
	"fmt"

	"boatify/config"
	boatRepo "boatify/database/repository/boat"
	"boatify/models"
	"boatify/services/reservation"
	"boatify/services/svcerr"
	"boatify/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// PaymentService drives Stripe checkout for reservations.
type PaymentService interface {
	// CreateCheckoutSession builds a Stripe checkout session for a pending
	// reservation owned by the actor and returns its redirect URL.
	CreateCheckoutSession(actor models.Actor, reservationID string) (string, error)
	// HandleWebhook verifies a Stripe webhook delivery and applies
	// checkout.session.completed events to the matching reservation.
	HandleWebhook(payload []byte, signature string) error
}

// DefaultPaymentService is the production PaymentService.
type DefaultPaymentService struct {
	Reservations reservation.ReservationService
	BoatRepo     boatRepo.BoatRepository
}

func (s *DefaultPaymentService) CreateCheckoutSession(actor models.Actor, reservationID string) (string, error) {
	res, err := s.Reservations.GetByID(actor, reservationID)
	if err != nil {
		return "", err
	}
	if res.Status != models.ReservationPending {
		return "", svcerr.Validation("Only pending reservations can be paid")
	}

	boat, err := s.BoatRepo.GetByID(res.BoatID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch boat: %w", err)
	}
	name := "Boat rental"
	if boat != nil {
		name = boat.Name
	}

	frontend := config.AppConfig.FrontendURL
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(int64(res.TotalPrice * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(frontend + "/payment-success?reservationId=" + res.ID),
		CancelURL:  stripe.String(frontend + "/payment-cancelled"),
	}
	params.AddMetadata("reservationId", res.ID)

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("reservation", res.ID),
		zap.String("session", sess.ID),
	)
	return sess.URL, nil
}

func (s *DefaultPaymentService) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		return svcerr.Validation("Invalid webhook signature")
	}

	if event.Type != "checkout.session.completed" {
		utils.GetLogger().Debug("webhook event ignored", zap.String("type", string(event.Type)))
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to decode checkout session: %w", err)
	}

	reservationID := sess.Metadata["reservationId"]
	if reservationID == "" {
		utils.GetLogger().Warn("checkout session without reservation metadata",
			zap.String("session", sess.ID),
		)
		return nil
	}
	return s.Reservations.ApprovePayment(reservationID)
}

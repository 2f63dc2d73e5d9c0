package payment

import (
	"context"
	"encoding/json"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// ChargeInput describes a charge request against the gateway. Amount is in
// the currency's smallest unit (satang for THB).
type ChargeInput struct {
	BookingID string
	Amount    int64
	Currency  string
	CardToken string
}

// ChargeResult is the gateway's answer. Status is one of the Omise charge
// statuses: successful, failed, pending, awaiting_authorize.
type ChargeResult struct {
	ChargeID       string
	Status         string
	FailureCode    string
	FailureMessage string
}

// Gateway abstracts the payment provider so the service and its tests do not
// talk to Omise directly.
type Gateway interface {
	Charge(ctx context.Context, in ChargeInput) (*ChargeResult, error)

	// VerifyEvent confirms a webhook event by retrieving it from the
	// provider. Webhook bodies are never trusted as-is.
	VerifyEvent(ctx context.Context, eventID string) (*VerifiedEvent, error)
}

// VerifiedEvent is a provider-confirmed webhook event.
type VerifiedEvent struct {
	Key       string
	ChargeID  string
	Status    string
	BookingID string
}

type omiseGateway struct {
	client *omise.Client
}

func NewOmiseGateway(publicKey, secretKey string) (Gateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	return &omiseGateway{client: client}, nil
}

func (g *omiseGateway) Charge(_ context.Context, in ChargeInput) (*ChargeResult, error) {
	charge := &omise.Charge{}
	err := g.client.Do(charge, &operations.CreateCharge{
		Amount:   in.Amount,
		Currency: in.Currency,
		Card:     in.CardToken,
		Metadata: map[string]any{"booking_id": in.BookingID},
	})
	if err != nil {
		return nil, err
	}

	result := &ChargeResult{
		ChargeID: charge.ID,
		Status:   string(charge.Status),
	}
	if charge.FailureCode != nil {
		result.FailureCode = *charge.FailureCode
	}
	if charge.FailureMessage != nil {
		result.FailureMessage = *charge.FailureMessage
	}
	return result, nil
}

func (g *omiseGateway) VerifyEvent(_ context.Context, eventID string) (*VerifiedEvent, error) {
	ev := &omise.Event{}
	if err := g.client.Do(ev, &operations.RetrieveEvent{EventID: eventID}); err != nil {
		return nil, err
	}

	verified := &VerifiedEvent{Key: ev.Key}

	// ev.Data is untyped; round-trip through JSON to read it as a charge.
	raw, err := json.Marshal(ev.Data)
	if err != nil {
		return verified, nil
	}
	var charge omise.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return verified, nil
	}

	verified.ChargeID = charge.ID
	verified.Status = string(charge.Status)
	if id, ok := charge.Metadata["booking_id"].(string); ok {
		verified.BookingID = id
	}
	return verified, nil
}

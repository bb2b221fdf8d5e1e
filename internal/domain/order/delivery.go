package order

import "context"

// TemplateParams is the flat field mapping handed to the mail-delivery
// collaborator. Keys follow the delivery template's placeholder names.
type TemplateParams map[string]any

// Recipient configures the fixed seller-side addressing for outgoing
// order notifications.
type Recipient struct {
	ToEmail  string
	ToName   string
	FromName string
}

// DeliverySender transmits a finalized order to the seller. It is the
// system's only network boundary. Implementations return a structured
// error on rejection so the caller can classify the failure detail.
type DeliverySender interface {
	Send(ctx context.Context, params TemplateParams) error
}

// DeliveryError is a structured rejection from the delivery service
// exposing the free-text detail used for message classification.
type DeliveryError interface {
	error
	DeliveryDetail() string
}

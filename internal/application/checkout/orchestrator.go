package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	cartapp "github.com/kitchcrafter/storefront/internal/application/cart"
	"github.com/kitchcrafter/storefront/internal/domain/cart"
	"github.com/kitchcrafter/storefront/internal/domain/order"
	"github.com/kitchcrafter/storefront/internal/domain/shared"
)

// Orchestrator drives one checkout submission at a time through the
// state machine Idle -> Validating -> Submitting -> Succeeded/Failed.
// Validation failures return to Idle with a field-specific message; a
// delivery failure leaves the cart and form untouched so the shopper
// can retry; success clears the cart and dismisses the checkout
// presentation. A single-flight guard rejects a second trigger while
// a submission is in flight instead of queueing it.
type Orchestrator struct {
	store     *cartapp.Store
	sender    order.DeliverySender
	recipient order.Recipient
	presenter Presenter
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.Mutex
	status order.SubmissionStatus
}

// NewOrchestrator wires the checkout flow to its collaborators
func NewOrchestrator(store *cartapp.Store, sender order.DeliverySender, recipient order.Recipient, presenter Presenter, log *zap.Logger) *Orchestrator {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	return &Orchestrator{
		store:     store,
		sender:    sender,
		recipient: recipient,
		presenter: presenter,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    log.Named("checkout"),
		now:       time.Now,
		status:    order.StatusIdle,
	}
}

// Status returns the current submission state
func (o *Orchestrator) Status() order.SubmissionStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Submit runs the full checkout flow for the given form. It returns
// the accepted order on success. Every error is also reported through
// the presenter, so callers may ignore the return values entirely.
func (o *Orchestrator) Submit(ctx context.Context, form Form) (*order.Order, error) {
	if err := o.enterValidating(); err != nil {
		o.presenter.Notify(Notification{
			Kind:    NotificationError,
			Title:   "Orden en proceso",
			Message: err.Error(),
		})
		return nil, err
	}

	ord, err := o.buildOrder(form)
	if err != nil {
		o.transition(order.StatusIdle)
		o.presenter.Notify(Notification{
			Kind:    NotificationError,
			Title:   "Datos incompletos",
			Message: err.Error(),
		})
		return nil, err
	}

	// the cart snapshot is frozen inside ord; mutations from here on
	// cannot alter the in-flight payload
	o.transition(order.StatusSubmitting)
	o.presenter.SetSubmitEnabled(false)

	o.logger.Info("submitting order",
		zap.String("reference", ord.Reference),
		zap.String("total", ord.Total.StringFixed()),
		zap.Int("items", len(ord.Items)),
	)

	sendErr := o.sender.Send(ctx, ord.TemplateParams(o.recipient))
	if sendErr != nil {
		return nil, o.handleFailure(ord, sendErr)
	}
	return ord, o.handleSuccess(ctx, ord)
}

// enterValidating is the single-flight guard: only the Idle and Failed
// states accept a new trigger.
func (o *Orchestrator) enterValidating() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.status.CanTransitionTo(order.StatusValidating) {
		return shared.ErrDuplicateSubmission
	}
	o.status = order.StatusValidating
	return nil
}

func (o *Orchestrator) transition(target order.SubmissionStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.status.CanTransitionTo(target) {
		o.logger.Error("invalid submission state transition",
			zap.String("from", o.status.String()),
			zap.String("to", target.String()),
		)
	}
	o.status = target
}

// buildOrder runs the validation guards in order and freezes the order
// snapshot. The cart guard runs before any field guard.
func (o *Orchestrator) buildOrder(form Form) (*order.Order, error) {
	if o.store.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	form = form.trimmed()
	if err := validateForm(o.validate, form); err != nil {
		return nil, err
	}

	zone := cart.ParseZone(form.City)
	customer := order.Customer{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
		City:    zone,
	}
	return order.New(
		customer,
		order.PaymentMethod(form.PaymentMethod),
		form.Notes,
		o.store.Items(),
		o.store.Subtotal(),
		o.store.QuoteShipping(zone),
		o.now(),
	)
}

func (o *Orchestrator) handleSuccess(ctx context.Context, ord *order.Order) error {
	o.transition(order.StatusSucceeded)
	o.logger.Info("order accepted", zap.String("reference", ord.Reference))

	o.presenter.Notify(Notification{
		Kind:    NotificationSuccess,
		Title:   "Orden enviada",
		Message: "Recibimos tu orden #" + ord.Reference,
	})
	o.presenter.DismissCheckout()

	// clear only after confirmed success so a failure never loses the
	// cart contents
	o.store.Clear(ctx)

	o.presenter.SetSubmitEnabled(true)
	o.transition(order.StatusIdle)
	return nil
}

func (o *Orchestrator) handleFailure(ord *order.Order, sendErr error) error {
	o.transition(order.StatusFailed)
	o.logger.Warn("order delivery failed",
		zap.String("reference", ord.Reference),
		zap.Error(sendErr),
	)

	message := classifyDeliveryError(sendErr)
	o.presenter.Notify(Notification{
		Kind:    NotificationError,
		Title:   "Error al enviar",
		Message: message,
	})
	o.presenter.SetSubmitEnabled(true)
	return shared.NewDeliveryFailureError(message)
}

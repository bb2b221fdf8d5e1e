package checkout

// NotificationKind classifies a transient user-facing notification
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a transient message shown to the shopper
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

// Presenter is the rendering collaborator for the checkout flow. The
// orchestrator reports every state change through it: notifications,
// the submit control's enabled state, and dismissal of the checkout
// presentation after a successful order.
type Presenter interface {
	Notify(n Notification)
	SetSubmitEnabled(enabled bool)
	DismissCheckout()
}

// NopPresenter is a Presenter that does nothing, for headless use
type NopPresenter struct{}

func (NopPresenter) Notify(Notification)   {}
func (NopPresenter) SetSubmitEnabled(bool) {}
func (NopPresenter) DismissCheckout()      {}

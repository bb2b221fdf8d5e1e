package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/kitchcrafter/storefront/internal/domain/order"
)

// messageRule maps a known substring of the delivery error detail to a
// friendlier user-facing message. Rules are evaluated top to bottom;
// the first match wins.
type messageRule struct {
	substring string
	message   string
}

var deliveryMessages = []messageRule{
	{"recipients address", "Error de configuración: el destinatario de órdenes no está configurado."},
	{"Invalid template", "Error: la plantilla de correo no es válida. Verifica la configuración."},
	{"Service not found", "Error: el servicio de correo no es válido. Verifica la configuración."},
}

const (
	timeoutMessage = "El envío de la orden tardó demasiado. Intenta de nuevo en unos minutos."

	genericPrefix   = "Hubo un problema al enviar tu orden. "
	genericFallback = genericPrefix + "Intenta de nuevo o escríbenos por WhatsApp."
)

// classifyDeliveryError derives the user-facing message for a failed
// delivery. Structured rejections are matched against the known
// substrings; a timeout gets its own message; anything else falls back
// to the generic retry text carrying the raw detail.
func classifyDeliveryError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutMessage
	}

	var deliveryErr order.DeliveryError
	if !errors.As(err, &deliveryErr) {
		return genericFallback
	}

	detail := deliveryErr.DeliveryDetail()
	for _, rule := range deliveryMessages {
		if strings.Contains(detail, rule.substring) {
			return rule.message
		}
	}
	if detail == "" {
		return genericFallback
	}
	return genericPrefix + "Error: " + detail
}

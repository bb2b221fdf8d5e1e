package cart

import (
	"strings"

	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

// Zone classifies the delivery destination for shipping purposes
type Zone string

const (
	ZoneGuatemala    Zone = "guatemala"
	ZoneSacatepequez Zone = "sacatepequez"
	ZoneInterior     Zone = "interior"
	ZoneUnknown      Zone = ""
)

// ParseZone maps a raw city/department value to a shipping zone.
// Unrecognized values classify as ZoneUnknown.
func ParseZone(raw string) Zone {
	switch Zone(strings.ToLower(strings.TrimSpace(raw))) {
	case ZoneGuatemala:
		return ZoneGuatemala
	case ZoneSacatepequez:
		return ZoneSacatepequez
	case ZoneInterior:
		return ZoneInterior
	}
	return ZoneUnknown
}

// IsKnown returns true for the three deliverable zones
func (z Zone) IsKnown() bool {
	switch z {
	case ZoneGuatemala, ZoneSacatepequez, ZoneInterior:
		return true
	}
	return false
}

// String returns the string representation of the zone
func (z Zone) String() string {
	return string(z)
}

// ShippingRule maps a destination zone to a flat delivery fee.
// Guatemala and Sacatepéquez ship free; the interior pays a fixed
// fee. An unknown zone quotes free until the shopper picks a city.
type ShippingRule struct {
	interiorFee valueobject.Money
}

// NewShippingRule creates a rule with the given interior fee.
// A zero fee reproduces the free-shipping promotion.
func NewShippingRule(interiorFee valueobject.Money) ShippingRule {
	return ShippingRule{interiorFee: interiorFee}
}

// FeeFor returns the flat shipping fee for the zone
func (r ShippingRule) FeeFor(zone Zone) valueobject.Money {
	if zone == ZoneInterior {
		return r.interiorFee
	}
	return valueobject.Zero()
}

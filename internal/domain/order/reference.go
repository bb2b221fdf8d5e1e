package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// referencePrefix marks order references issued by this storefront
const referencePrefix = "KC"

// NewReference mints a user-visible order reference of the form
// KC-<unix millis>-<5 char suffix>. The timestamp keeps references
// sortable; the random suffix disambiguates submissions within the
// same millisecond.
func NewReference(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:5])
	return fmt.Sprintf("%s-%d-%s", referencePrefix, now.UnixMilli(), suffix)
}

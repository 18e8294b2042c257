package field

import (
	"time"

	"github.com/google/uuid"
)

// Field is a cultivated plot of the estate. Harvests and expenses are
// attributed to at most one field; records without a field belong to the
// estate-wide "general" bucket.
type Field struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

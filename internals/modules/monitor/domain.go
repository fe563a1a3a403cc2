package monitor

import (
	"time"

	"github.com/google/uuid"
)

// Monitor is one endpoint under observation. The monitoring subsystem owns
// these rows; this service only reads them.
type Monitor struct {
	ID               uuid.UUID
	Name             string
	Url              string
	CheckIntervalSec int32
	CreatedAt        time.Time
}

package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateTrackingNumber produces an opaque per-order shipment identifier,
// e.g. RT-20250908130500-1A2B3C4D.
func GenerateTrackingNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "RT-" + time.Now().Format("20060102150405") + "-" + short
}

// utils/ids.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns an opaque identifier of the form
// <prefix>_<unix-millis>_<random-suffix>. Uniqueness is best effort; the
// random suffix makes same-millisecond collisions unlikely but nothing
// enforces it.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

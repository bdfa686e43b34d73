// Package awb allocates air waybill numbers locally. Carrier integrations that issue
// their own numbers would implement ports.AWBAllocator instead.
package awb

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"fulfillment/internal/pkg/errs"
)

// LocalAllocator issues numbers of the form <prefix><carrier code><13 digits>. The
// numeric part starts at the process start time in milliseconds and increases by one
// per allocation, so numbers stay unique across restarts of a single instance. Two
// replicas started in the same millisecond window with the same prefix would issue the
// same numbers; the unique awb column turns such a clash into errs.ConflictError and the
// booking rolls back, so replicas are given distinct prefixes.
type LocalAllocator struct {
	prefix string
	next   atomic.Int64
}

func NewLocalAllocator(prefix string) *LocalAllocator {
	a := &LocalAllocator{prefix: strings.ToUpper(strings.TrimSpace(prefix))}
	a.next.Store(time.Now().UnixMilli())
	return a
}

func (a *LocalAllocator) Allocate(ctx context.Context, carrier string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	code := carrierCode(carrier)
	if code == "" {
		return "", errs.NewValueIsRequiredError("carrier")
	}
	return fmt.Sprintf("%s%s%013d", a.prefix, code, a.next.Add(1)), nil
}

// carrierCode is the first two letters of the carrier name, upper-cased.
func carrierCode(carrier string) string {
	var b strings.Builder
	for _, r := range carrier {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() == 2 {
				break
			}
		}
	}
	return b.String()
}

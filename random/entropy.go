package random

import (
	"context"
	crand "crypto/rand"
	"io"
	"time"

	"golang.org/x/crypto/chacha20"

	"github.com/kbukum/vmcore/errors"
	"github.com/kbukum/vmcore/observability"
)

// readEntropyKey reads a ChaCha20 key from r. The read may block briefly on
// the host entropy pool and is not cancellable.
func readEntropyKey(ctx context.Context, r io.Reader, metrics *observability.Metrics) ([chacha20.KeySize]byte, error) {
	var key [chacha20.KeySize]byte
	if r == nil {
		r = crand.Reader
	}

	_, span := observability.StartSpan(ctx, observability.SpanEntropyRead)
	defer span.End()

	start := time.Now()
	_, err := io.ReadFull(r, key[:])
	metrics.RecordEntropyRead(ctx, time.Since(start), err == nil)
	if err != nil {
		appErr := errors.EntropyUnavailable(err)
		observability.SetSpanError(span, appErr)
		return key, appErr
	}
	return key, nil
}

package canmsg

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// Bridge forwards every message received on a to b and every message
// received on b to a until one side fails or ctx is done.
//
// ErrClosed from either side ends the bridge cleanly and Bridge returns
// nil. On ctx cancellation both sides are closed if they implement
// io.Closer, since Receive cannot be interrupted otherwise, and ctx.Err()
// is returned. Any other error is returned as is.
func Bridge(ctx context.Context, a, b Bus) error {
	errg, gctx := errgroup.WithContext(ctx)
	errg.Go(forward(a, b))
	errg.Go(forward(b, a))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-gctx.Done():
			closeBus(a)
			closeBus(b)
		case <-done:
		}
	}()

	err := errg.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}

func forward(src, dst Bus) func() error {
	return func() error {
		for {
			m, err := src.Receive()
			if err != nil {
				return err
			}
			if err := dst.Send(m); err != nil {
				return err
			}
		}
	}
}

func closeBus(b Bus) {
	if c, ok := b.(io.Closer); ok {
		_ = c.Close()
	}
}

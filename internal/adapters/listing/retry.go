package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/retry"
)

var errReported = errors.New("listing reported failure")

// WithRetry reintenta next con backoff. Un Success=false también se reintenta;
// si se agotan los intentos se devuelve ese último resultado tal cual, para que
// el feed lo trate como fallo reportado y no como error inesperado.
func WithRetry(next feed.Lister, opts retry.Options[feed.ListResult]) feed.Lister {
	return feed.ListerFunc(func(ctx context.Context) (feed.ListResult, error) {
		var reported feed.ListResult
		res, err := retry.Do(ctx, opts, func(ctx context.Context) (feed.ListResult, error) {
			res, err := next.List(ctx)
			if err != nil {
				return feed.ListResult{}, err
			}
			if !res.Success {
				reported = res
				return feed.ListResult{}, fmt.Errorf("%w: %s", errReported, strings.Join(res.Errors, "; "))
			}
			return res, nil
		})
		if errors.Is(err, errReported) {
			return reported, nil
		}
		return res, err
	})
}

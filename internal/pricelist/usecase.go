package pricelist

import "context"

type UseCase interface {
	// BuildPriceList compiles the report from the current available-item
	// snapshot, serving a cached copy when nothing invalidated it.
	BuildPriceList(ctx context.Context) (string, error)
	// BuildAndNotify compiles the report and pushes it to the
	// notification channel; delivery failures are logged, not returned.
	BuildAndNotify(ctx context.Context) (string, error)
}

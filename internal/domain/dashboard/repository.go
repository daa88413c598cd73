package dashboard

import "context"

type ViewStateRepository interface {
	// Get returns ok=false when no view state has been saved yet.
	Get(ctx context.Context) (state ViewState, ok bool, err error)
	Save(ctx context.Context, state ViewState) error
}

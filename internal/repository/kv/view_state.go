package kv

import (
	"context"
	"errors"

	"github.com/worksphere/worksphere-backend-go/internal/domain/dashboard"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
)

const viewStateKey = "view_state"

type viewStateRepositoryImpl struct {
	store storage.KeyValueStore
}

func NewViewStateRepository(store storage.KeyValueStore) dashboard.ViewStateRepository {
	return &viewStateRepositoryImpl{store: store}
}

func (r *viewStateRepositoryImpl) Get(ctx context.Context) (dashboard.ViewState, bool, error) {
	var state dashboard.ViewState
	if err := storage.GetJSON(ctx, r.store, viewStateKey, &state); err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return dashboard.ViewState{}, false, nil
		}
		return dashboard.ViewState{}, false, err
	}
	return state, true, nil
}

func (r *viewStateRepositoryImpl) Save(ctx context.Context, state dashboard.ViewState) error {
	return storage.SetJSON(ctx, r.store, viewStateKey, state)
}

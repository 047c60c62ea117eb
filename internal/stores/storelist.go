package stores

import (
	"context"
	"log/slog"

	"github.com/five82/storedash/internal/api"
)

const msgStoresFailed = "매장 리스트를 불러오는 데 실패했습니다."

// StoreListSnapshot is a copy of the store list state. Selected is nil when
// nothing is selected.
type StoreListSnapshot struct {
	Stores   []api.Store
	Selected *api.Store
	Status   Status
}

// StoreList owns the list of stores and the current selection.
type StoreList struct {
	base

	stores   []api.Store
	selected *api.Store
	status   Status
}

// NewStoreList builds an empty store list.
func NewStoreList(client api.Requester, logger *slog.Logger) *StoreList {
	return &StoreList{base: newBase(client, logger, "storeList")}
}

// Snapshot returns a copy of the current state.
func (s *StoreList) Snapshot() StoreListSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := StoreListSnapshot{Stores: cloneSlice(s.stores), Status: s.status}
	if s.selected != nil {
		selected := *s.selected
		snap.Selected = &selected
	}
	return snap
}

// FetchStoreList replaces the store list.
func (s *StoreList) FetchStoreList(ctx context.Context) {
	s.mu.Lock()
	s.status.begin()
	s.mu.Unlock()

	var rows []api.Store
	err := s.get(ctx, "fetchStoreList", api.PathStores, nil, &rows)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.stores = []api.Store{}
		s.status.fail(msgStoresFailed)
		return
	}
	list := make([]api.Store, 0, len(rows))
	for _, row := range rows {
		list = append(list, api.Store{StoreID: row.StoreID, StoreName: row.StoreName})
	}
	s.stores = list
	s.status.succeed()
}

// SelectStore selects the fetched store with storeID, or clears the
// selection when there is none.
func (s *StoreList) SelectStore(storeID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	for _, store := range s.stores {
		if store.StoreID == storeID {
			selected := store
			s.selected = &selected
			return
		}
	}
}

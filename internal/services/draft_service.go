package services

import (
	"sync"

	"konaseema/internal/models"
	"konaseema/pkg/localstore"
)

// DraftService keeps the shipping draft for each session, saved on every
// change independently of the cart. A draft is never cleared by a failed
// checkout; the customer corrects it and resubmits.
type DraftService struct {
	store  *localstore.Store // optional; nil disables persistence
	drafts map[string]models.ShippingDraft
	mu     sync.RWMutex
}

// NewDraftService creates a DraftService backed by the given local store.
func NewDraftService(store *localstore.Store) *DraftService {
	return &DraftService{
		store:  store,
		drafts: make(map[string]models.ShippingDraft),
	}
}

// Get returns the shipping draft for a session. A missing or malformed
// stored draft falls back to the default empty draft.
func (s *DraftService) Get(sessionID string) models.ShippingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	if draft, ok := s.drafts[sessionID]; ok {
		return draft
	}
	draft := models.DefaultShippingDraft()
	if s.store != nil {
		s.store.Load(draftBlobKey(sessionID), &draft)
	}
	s.drafts[sessionID] = draft
	return draft
}

// Save replaces the draft for a session and mirrors it to durable storage.
func (s *DraftService) Save(sessionID string, draft models.ShippingDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[sessionID] = draft
	if s.store != nil {
		s.store.Save(draftBlobKey(sessionID), draft)
	}
}

func draftBlobKey(sessionID string) string {
	return "draft_" + sessionID
}

package client

import (
	"context"
	"sync"
)

// Searcher issues catalog searches and keeps the latest result. Each request
// gets a monotonically increasing sequence number; a response is applied to
// the stored result only if no newer request has completed, so out-of-order
// responses never overwrite fresher ones.
type Searcher struct {
	api *Client

	mu      sync.Mutex
	seq     uint64
	applied uint64
	result  *SearchResult
}

// NewSearcher creates a searcher bound to the API client
func NewSearcher(api *Client) *Searcher {
	return &Searcher{api: api}
}

// Search runs a catalog query and returns its result. The stored result is
// updated only when this request is still the newest completed one.
func (s *Searcher) Search(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	s.mu.Lock()
	s.seq++
	id := s.seq
	s.mu.Unlock()

	result, err := s.api.SearchRestaurants(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if id > s.applied {
		s.applied = id
		s.result = result
	}
	s.mu.Unlock()
	return result, nil
}

// Result returns the latest applied search result, or nil before any search
func (s *Searcher) Result() *SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

package handlers_test

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/workopia/internal/listing"
)

// memStore is an in-memory listing.Store.
type memStore struct {
	mu    sync.Mutex
	items map[int64]listing.Listing
	next  int64
	err   error

	latestLimit                    int
	searchKeywords, searchLocation string
}

func newMemStore(items ...listing.Listing) *memStore {
	s := &memStore{items: make(map[int64]listing.Listing)}
	for _, l := range items {
		s.items[l.ID] = l
		s.next = max(s.next, l.ID)
	}
	return s
}

func (s *memStore) sorted() []listing.Listing {
	out := make([]listing.Listing, 0, len(s.items))
	for _, l := range s.items {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b listing.Listing) int { return cmp.Compare(b.ID, a.ID) })
	return out
}

func (s *memStore) List(context.Context) ([]listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sorted(), nil
}

func (s *memStore) Latest(_ context.Context, limit int) ([]listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.latestLimit = limit
	out := s.sorted()
	return out[:min(limit, len(out))], nil
}

func (s *memStore) Find(_ context.Context, id int64) (listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return listing.Listing{}, s.err
	}
	l, ok := s.items[id]
	if !ok {
		return listing.Listing{}, listing.ErrNotFound
	}
	return l, nil
}

func (s *memStore) Create(_ context.Context, userID int64, in listing.Input) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.next++
	l := listing.Listing{ID: s.next, UserID: userID, CreatedAt: time.Now()}
	apply(&l, in)
	s.items[l.ID] = l
	return l.ID, nil
}

func (s *memStore) Update(_ context.Context, id int64, in listing.Input) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	l, ok := s.items[id]
	if !ok {
		return listing.ErrNotFound
	}
	apply(&l, in)
	s.items[id] = l
	return nil
}

func (s *memStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return listing.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memStore) Search(_ context.Context, keywords, location string) ([]listing.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.searchKeywords, s.searchLocation = keywords, location

	var out []listing.Listing
	for _, l := range s.sorted() {
		text := strings.ToLower(l.Title + " " + l.Description + " " + l.Value("tags") + " " + l.Value("company"))
		place := strings.ToLower(l.City + " " + l.State)
		if strings.Contains(text, strings.ToLower(keywords)) && strings.Contains(place, strings.ToLower(location)) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memStore) get(id int64) (listing.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.items[id]
	return l, ok
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func apply(l *listing.Listing, in listing.Input) {
	required := map[string]*string{
		"title": &l.Title, "description": &l.Description, "salary": &l.Salary,
		"city": &l.City, "state": &l.State, "email": &l.Email,
	}
	optional := map[string]**string{
		"tags": &l.Tags, "company": &l.Company, "address": &l.Address,
		"phone": &l.Phone, "requirements": &l.Requirements, "benefits": &l.Benefits,
	}
	for k, v := range in {
		if p, ok := required[k]; ok {
			*p = v
			continue
		}
		if p, ok := optional[k]; ok {
			if v == "" {
				*p = nil
			} else {
				*p = &v
			}
		}
	}
}

var _ listing.Store = (*memStore)(nil)

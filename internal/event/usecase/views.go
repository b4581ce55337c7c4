package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultViewsSize = 1024
	DefaultViewsTTL  = 30 * time.Minute
)

type view interface {
	Close()
}

// Views keeps detail and create views between requests, keyed by a view
// token. Entries expire after ttl; an evicted view is closed so late
// transport results are dropped.
type Views struct {
	cache *expirable.LRU[string, view]
}

// NewViews creates a registry holding at most size views for ttl each.
func NewViews(size int, ttl time.Duration) *Views {
	if size <= 0 {
		size = DefaultViewsSize
	}
	if ttl <= 0 {
		ttl = DefaultViewsTTL
	}
	return &Views{
		cache: expirable.NewLRU[string, view](size, func(_ string, v view) {
			v.Close()
		}, ttl),
	}
}

// Len returns the number of live views.
func (vs *Views) Len() int {
	return vs.cache.Len()
}

// Remove drops and closes the view behind token.
func (vs *Views) Remove(token string) {
	vs.cache.Remove(token)
}

func (vs *Views) newToken() string {
	return uuid.NewString()
}

func (vs *Views) add(token string, v view) {
	vs.cache.Add(token, v)
}

// detail returns the detail view behind token if it belongs to event id.
func (vs *Views) detail(token string, id int64) (*DetailView, bool) {
	if token == "" {
		return nil, false
	}
	v, ok := vs.cache.Get(token)
	if !ok {
		return nil, false
	}
	dv, ok := v.(*DetailView)
	if !ok || dv.id != id {
		return nil, false
	}
	return dv, true
}

// create returns the create view behind token.
func (vs *Views) create(token string) (*CreateView, bool) {
	if token == "" {
		return nil, false
	}
	v, ok := vs.cache.Get(token)
	if !ok {
		return nil, false
	}
	cv, ok := v.(*CreateView)
	return cv, ok
}

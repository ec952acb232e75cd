package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

// memContactRepo is an in-memory ContactRepository.
type memContactRepo struct {
	mu    sync.Mutex
	items []*model.Contact
}

func (r *memContactRepo) Create(_ context.Context, c *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = fmt.Sprintf("c%d", len(r.items)+1)
	c.CreatedAt = time.Now()
	r.items = append(r.items, c)
	return nil
}

func (r *memContactRepo) List(context.Context) ([]*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Contact, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func (r *memContactRepo) SetHandled(_ context.Context, id string, handled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id {
			c.Handled = handled
			return nil
		}
	}
	return repository.ErrNotFound
}

// memSettingsRepo is an in-memory SettingsRepository.
type memSettingsRepo struct {
	mu       sync.Mutex
	settings *model.SiteSettings
}

func (r *memSettingsRepo) Get(context.Context) (model.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return model.SiteSettings{}, repository.ErrNotFound
	}
	return *r.settings, nil
}

func (r *memSettingsRepo) Put(_ context.Context, s model.SiteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &s
	return nil
}

// memContentRepo is an in-memory ContentRepository keyed by position.
type memContentRepo[T any] struct {
	mu     sync.Mutex
	ids    []string
	items  map[string]*T
	nextID int
}

func newMemContentRepo[T any]() *memContentRepo[T] {
	return &memContentRepo[T]{items: make(map[string]*T)}
}

func (r *memContentRepo[T]) List(context.Context) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*T, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memContentRepo[T]) Create(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := memID(r.nextID)
	r.ids = append(r.ids, id)
	r.items[id] = item
	return nil
}

func (r *memContentRepo[T]) Update(_ context.Context, id string, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	r.items[id] = item
	return nil
}

func (r *memContentRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// memID is the UUID memContentRepo assigns to its n-th created item.
func memID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

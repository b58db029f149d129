// Package repository holds the in-memory activity registry.
// Nothing is persisted; the registry is rebuilt from the seed set on every start.
package repository

import (
	"errors"
	"sync"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
)

// ErrNotFound is returned when the named activity does not exist.
var ErrNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the email is already on the roster.
var ErrAlreadySignedUp = errors.New("student is already signed up")

// ErrNotSignedUp is returned when removing an email that is not on the roster.
var ErrNotSignedUp = errors.New("student is not signed up for this activity")

// ActivityRepository maps activity names to their records.
// The set of names is fixed at construction.
type ActivityRepository struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*model.Activity
}

// NewActivityRepository builds a registry from seed. Seed entries are copied;
// later entries with a duplicate name are ignored.
func NewActivityRepository(seed []model.Activity) *ActivityRepository {
	r := &ActivityRepository{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*model.Activity, len(seed)),
	}
	for i := range seed {
		if _, ok := r.activities[seed[i].Name]; ok {
			continue
		}
		a := seed[i].Clone()
		r.order = append(r.order, a.Name)
		r.activities[a.Name] = &a
	}
	return r
}

// List returns a snapshot of every activity in seed order.
func (r *ActivityRepository) List() model.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(model.Catalog, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out
}

// Get returns a snapshot of one activity or ErrNotFound.
func (r *ActivityRepository) Get(name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the activity's roster.
// The existence check and the append happen under one lock.
func (r *ActivityRepository) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	a.AddParticipant(email)
	return nil
}

// Unregister removes email from the activity's roster.
func (r *ActivityRepository) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if !a.RemoveParticipant(email) {
		return ErrNotSignedUp
	}
	return nil
}

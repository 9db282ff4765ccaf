//go:build unit || e2e

package storetest

import (
	"context"
	"sync"

	"course-cart/internal/domain/course"
	"course-cart/internal/usecase/shared"
)

// RecordingCollection is an in-memory CollectionStorage that counts writes.
type RecordingCollection struct {
	mu      sync.Mutex
	items   []course.Course
	present bool
	saves   int
	removes int
}

func NewRecordingCollection(initial ...course.Course) *RecordingCollection {
	r := &RecordingCollection{}
	if len(initial) > 0 {
		r.items = append([]course.Course(nil), initial...)
		r.present = true
	}
	return r
}

func (r *RecordingCollection) Load(context.Context) []course.Course {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]course.Course{}, r.items...)
}

func (r *RecordingCollection) Save(_ context.Context, items []course.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]course.Course(nil), items...)
	r.present = true
	r.saves++
}

func (r *RecordingCollection) Remove(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	r.present = false
	r.removes++
}

// Stored returns the last written items and whether the key exists.
func (r *RecordingCollection) Stored() ([]course.Course, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]course.Course(nil), r.items...), r.present
}

func (r *RecordingCollection) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *RecordingCollection) Removes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removes
}

type Profile struct {
	CartStorage     *RecordingCollection
	PurchaseStorage *RecordingCollection
}

func (p *Profile) Cart() shared.CollectionStorage      { return p.CartStorage }
func (p *Profile) Purchases() shared.CollectionStorage { return p.PurchaseStorage }

// Factory hands out one recording Profile per profile id.
type Factory struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func NewFactory() *Factory {
	return &Factory{profiles: make(map[string]*Profile)}
}

func (f *Factory) ForProfile(profileID string) shared.ProfileStorage {
	return f.Profile(profileID)
}

func (f *Factory) Profile(profileID string) *Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[profileID]
	if !ok {
		p = &Profile{
			CartStorage:     NewRecordingCollection(),
			PurchaseStorage: NewRecordingCollection(),
		}
		f.profiles[profileID] = p
	}
	return p
}

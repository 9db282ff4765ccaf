package shared

import (
	"context"

	"course-cart/internal/domain/course"
)

// Persisted key names inside a profile namespace.
const (
	CartKey      = "shopping_cart"
	PurchasesKey = "purchased_courses"
)

// KeyValueStorage is the durable string store behind the collections.
// Get reports found=false for an absent key without an error.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// CollectionStorage persists one course collection under one key.
// Load never fails: absent or unreadable data yields an empty slice.
// Save and Remove are fire-and-forget; failures are logged, not returned.
type CollectionStorage interface {
	Load(ctx context.Context) []course.Course
	Save(ctx context.Context, items []course.Course)
	Remove(ctx context.Context)
}

// ProfileStorage groups the collections of one profile.
type ProfileStorage interface {
	Cart() CollectionStorage
	Purchases() CollectionStorage
}

type StorageFactory interface {
	ForProfile(profileID string) ProfileStorage
}

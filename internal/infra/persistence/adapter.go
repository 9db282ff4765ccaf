package persistence

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"course-cart/internal/domain/course"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase/shared"
)

// Adapter maps profile collections onto a KeyValueStorage as JSON arrays.
type Adapter struct {
	kv      shared.KeyValueStorage
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

func NewAdapter(kv shared.KeyValueStorage, cfg config.StorageConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		kv:      kv,
		prefix:  strings.Trim(cfg.KeyPrefix, "/"),
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Key namespaces name under the prefix and profile. Empty parts are skipped,
// so an empty prefix and profile give the bare key.
func (a *Adapter) Key(profileID, name string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.prefix, profileID, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

func (a *Adapter) ForProfile(profileID string) shared.ProfileStorage {
	return profileStorage{
		cart:      a.Collection(a.Key(profileID, shared.CartKey)),
		purchases: a.Collection(a.Key(profileID, shared.PurchasesKey)),
	}
}

func (a *Adapter) Collection(key string) *Collection {
	return &Collection{adapter: a, key: key}
}

// withTimeout drops the caller's cancellation and applies the storage timeout.
func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

type profileStorage struct {
	cart      *Collection
	purchases *Collection
}

func (p profileStorage) Cart() shared.CollectionStorage      { return p.cart }
func (p profileStorage) Purchases() shared.CollectionStorage { return p.purchases }

// Collection is the CollectionStorage for a single key.
type Collection struct {
	adapter *Adapter
	key     string
}

func (c *Collection) Key() string { return c.key }

func (c *Collection) Load(ctx context.Context) []course.Course {
	ctx, cancel := c.adapter.withTimeout(ctx)
	defer cancel()

	raw, found, err := c.adapter.kv.Get(ctx, c.key)
	if err != nil {
		c.adapter.logger.Warn("failed to read collection, starting empty",
			slog.String("key", c.key), slog.Any("error", err))
		return []course.Course{}
	}
	if !found {
		return []course.Course{}
	}

	items, rep, err := Decode(raw)
	if err != nil {
		c.adapter.logger.Warn("unparsable collection, starting empty",
			slog.String("key", c.key), slog.Any("error", err))
		return []course.Course{}
	}
	if rep.Dropped > 0 || rep.Repaired > 0 {
		c.adapter.logger.Warn("normalized malformed entries",
			slog.String("key", c.key), slog.Int("dropped", rep.Dropped), slog.Int("repaired", rep.Repaired))
	}
	return items
}

func (c *Collection) Save(ctx context.Context, items []course.Course) {
	raw, err := Encode(items)
	if err != nil {
		c.adapter.logger.Warn("failed to encode collection",
			slog.String("key", c.key), slog.Any("error", err))
		return
	}

	ctx, cancel := c.adapter.withTimeout(ctx)
	defer cancel()

	if err := c.adapter.kv.Set(ctx, c.key, raw); err != nil {
		c.adapter.logger.Warn("failed to write collection",
			slog.String("key", c.key), slog.Any("error", err))
	}
}

func (c *Collection) Remove(ctx context.Context) {
	ctx, cancel := c.adapter.withTimeout(ctx)
	defer cancel()

	if err := c.adapter.kv.Remove(ctx, c.key); err != nil {
		c.adapter.logger.Warn("failed to remove collection",
			slog.String("key", c.key), slog.Any("error", err))
	}
}

// Encode writes items as a JSON array; nil encodes as [].
func Encode(items []course.Course) (string, error) {
	if items == nil {
		items = []course.Course{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", errs.Wrap(err, "json.Marshal")
	}
	return string(b), nil
}

// Report counts what Decode had to fix.
type Report struct {
	// Dropped entries: not objects, no integer id, or a repeated id.
	Dropped int
	// Repaired fields inside kept entries.
	Repaired int
}

// Decode reads a JSON array of courses. An element is kept when it is an
// object with an integer id; only the first entry per id is kept. Inside a
// kept entry an integer display field becomes its decimal text and any other
// mistyped field is blanked. A value that is not an array at all is an
// error. JSON null decodes as an empty collection.
func Decode(raw string) ([]course.Course, Report, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, Report{}, errs.Wrap(err, "json.Unmarshal")
	}

	col := course.NewCollection()
	var rep Report
	for _, el := range elems {
		c, repaired, ok := decodeEntry(el)
		if !ok || !col.Add(c) {
			rep.Dropped++
			continue
		}
		rep.Repaired += repaired
	}
	return col.Items(), rep, nil
}

func decodeEntry(el json.RawMessage) (course.Course, int, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(el, &fields); err != nil || fields == nil {
		return course.Course{}, 0, false
	}
	var id *int
	if err := json.Unmarshal(fields["id"], &id); err != nil || id == nil {
		return course.Course{}, 0, false
	}

	c := course.Course{ID: *id}
	repaired := 0
	for name, dst := range map[string]*string{
		"title":       &c.Title,
		"price":       &c.Price,
		"duration":    &c.Duration,
		"level":       &c.Level,
		"image":       &c.Image,
		"description": &c.Description,
	} {
		v, ok := displayText(fields[name])
		if !ok {
			repaired++
		}
		*dst = v
	}
	if q, ok := fields["quantity"]; ok {
		if err := json.Unmarshal(q, &c.Quantity); err != nil {
			c.Quantity = 0
			repaired++
		}
	}
	return c, repaired, true
}

// displayText reads a display string. Absent and null give "" and count as
// well-typed; an integer gives its decimal text; anything else gives "".
func displayText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case float64:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		i, err := n.Int64()
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(i, 10), false
	default:
		return "", false
	}
}

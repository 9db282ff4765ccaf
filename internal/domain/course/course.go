package course

// Course is a catalog entry as it travels through the cart and purchase
// collections. Display fields are opaque; only ID carries meaning.
type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Collection is an insertion-ordered set of courses keyed by ID.
// It is not safe for concurrent use.
type Collection struct {
	items []Course
}

// NewCollection keeps the first occurrence of every ID.
func NewCollection(items ...Course) *Collection {
	c := &Collection{items: make([]Course, 0, len(items))}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

func (c *Collection) indexOf(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends x unless an entry with the same ID exists.
func (c *Collection) Add(x Course) bool {
	if c.indexOf(x.ID) >= 0 {
		return false
	}
	c.items = append(c.items, x)
	return true
}

func (c *Collection) Remove(id int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *Collection) Has(id int) bool {
	return c.indexOf(id) >= 0
}

func (c *Collection) Get(id int) (Course, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return Course{}, false
	}
	return c.items[i], true
}

// Update applies fn to the entry with the given ID. The ID itself is immutable.
func (c *Collection) Update(id int, fn func(*Course)) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	c.items[i].ID = id
	return true
}

func (c *Collection) Clear() bool {
	if len(c.items) == 0 {
		return false
	}
	c.items = c.items[:0]
	return true
}

func (c *Collection) Len() int { return len(c.items) }

// Items returns a copy in insertion order.
func (c *Collection) Items() []Course {
	out := make([]Course, len(c.items))
	copy(out, c.items)
	return out
}

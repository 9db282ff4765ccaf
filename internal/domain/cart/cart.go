package cart

import "course-cart/internal/domain/course"

// Cart holds the courses a profile intends to buy.
type Cart struct {
	*course.Collection
}

func New(items ...course.Course) *Cart {
	return &Cart{Collection: course.NewCollection(items...)}
}

// SetQuantity attaches quantity to the entry with the given id.
// A quantity below 1 removes the entry instead.
func (c *Cart) SetQuantity(id, quantity int) bool {
	if quantity < 1 {
		return c.Remove(id)
	}
	current, ok := c.Get(id)
	if !ok || current.Quantity == quantity {
		return false
	}
	return c.Update(id, func(x *course.Course) { x.Quantity = quantity })
}

// TotalPrice sums the parsed price of every entry once; quantity is display-only.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.Items() {
		total += course.ParsePrice(it.Price)
	}
	return total
}

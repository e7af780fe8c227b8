package cart

import (
	"errors"

	"quotemaster/go_backend/internal/domain/catalog"
)

var (
	ErrAlreadyInCart = errors.New("item already in cart")
	ErrNotInCart     = errors.New("item not in cart")
)

// Line is a catalog item captured at the moment it was added, plus the
// requested quantity. Later catalog refreshes do not touch it.
type Line struct {
	catalog.Item
	Quantity int `json:"quantity"`
}

func (l Line) Total() float64 { return l.MRP * float64(l.Quantity) }

// Cart holds at most one line per item id, in insertion order.
// It is not safe for concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add appends item with qty (values below 1 become 1). Adding an id that is
// already present leaves the cart untouched and returns ErrAlreadyInCart.
func (c *Cart) Add(item catalog.Item, qty int) error {
	if c.index(item.ID) >= 0 {
		return ErrAlreadyInCart
	}
	if qty < 1 {
		qty = 1
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: qty})
	return nil
}

// SetQuantity changes the quantity of a line. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(id string, qty int) error {
	i := c.index(id)
	if i < 0 {
		return ErrNotInCart
	}
	if qty <= 0 {
		c.removeAt(i)
		return nil
	}
	c.lines[i].Quantity = qty
	return nil
}

func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) index(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

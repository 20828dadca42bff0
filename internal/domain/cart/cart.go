package cart

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

// Cart keeps lines in insertion order with at most one line per id.
// It is not safe for concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from its persisted JSON form. Lines that break the
// cart invariants (duplicate id, quantity below 1, negative price) are dropped.
func Restore(data string) (*Cart, error) {
	c := New()
	if data == "" {
		return c, nil
	}
	var lines []Line
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return c, ErrCorruptSnapshot
	}
	for _, l := range lines {
		if l.Quantity < 1 || l.Validate() != nil || c.index(l.ID) >= 0 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

// Clone returns an independent copy.
func (c *Cart) Clone() *Cart {
	if c.lines == nil {
		return New()
	}
	return &Cart{lines: c.Lines()}
}

func (c *Cart) Marshal() (string, error) {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Add increments an existing line, keeping its metadata, or appends a new one.
// It returns the resulting quantity.
func (c *Cart) Add(item Item) (int, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i].Quantity, nil
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1}.clone())
	return 1, nil
}

// Remove reports whether a line was deleted.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return true
}

// UpdateQuantity reports whether a line with id exists.
func (c *Cart) UpdateQuantity(id string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	c.lines[i].Quantity = quantity
	return true, nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.clone()
	}
	return out
}

func (c *Cart) Line(id string) (Line, bool) {
	i := c.index(id)
	if i < 0 {
		return Line{}, false
	}
	return c.lines[i].clone(), true
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.lines)
}

func (c *Cart) index(id string) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ID == id })
}

// Subtotal is the exact sum of price times quantity.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

package cart

import (
	"errors"
	"testing"

	"quotemaster/go_backend/internal/domain/catalog"
)

func item(id string, mrp float64) catalog.Item {
	return catalog.Item{ID: id, ItemNo: "NO-" + id, Description: "desc " + id, MRP: mrp}
}

func TestAdd_RejectsDuplicate(t *testing.T) {
	c := New()
	if err := c.Add(item("item-0", 10), 3); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := c.Add(item("item-0", 99), 1)
	if !errors.Is(err, ErrAlreadyInCart) {
		t.Fatalf("Add() duplicate error = %v, want ErrAlreadyInCart", err)
	}
	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 3 || lines[0].MRP != 10 {
		t.Fatalf("cart changed after duplicate add: %+v", lines)
	}
}

func TestAdd_MinimumQuantity(t *testing.T) {
	c := New()
	_ = c.Add(item("a", 1), 0)
	_ = c.Add(item("b", 1), -4)
	for _, l := range c.Lines() {
		if l.Quantity != 1 {
			t.Fatalf("line %s quantity = %d, want 1", l.ID, l.Quantity)
		}
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	_ = c.Add(item("a", 5), 1)
	_ = c.Add(item("b", 7), 1)

	if err := c.SetQuantity("a", 4); err != nil {
		t.Fatalf("SetQuantity() error = %v", err)
	}
	if got := c.Lines()[0].Quantity; got != 4 {
		t.Fatalf("quantity = %d, want 4", got)
	}

	for _, q := range []int{0, -1} {
		c := New()
		_ = c.Add(item("a", 5), 2)
		if err := c.SetQuantity("a", q); err != nil {
			t.Fatalf("SetQuantity(%d) error = %v", q, err)
		}
		if c.Len() != 0 {
			t.Fatalf("SetQuantity(%d) left %d lines", q, c.Len())
		}
	}

	if err := c.SetQuantity("missing", 1); !errors.Is(err, ErrNotInCart) {
		t.Fatalf("SetQuantity(missing) error = %v", err)
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	_ = c.Add(item("a", 1), 1)
	_ = c.Add(item("b", 1), 1)
	_ = c.Add(item("c", 1), 1)

	if !c.Remove("b") {
		t.Fatal("Remove(b) = false")
	}
	if c.Remove("b") {
		t.Fatal("second Remove(b) = true")
	}
	lines := c.Lines()
	if len(lines) != 2 || lines[0].ID != "a" || lines[1].ID != "c" {
		t.Fatalf("lines = %+v", lines)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", c.Len())
	}
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	_ = c.Add(item("a", 1), 1)
	lines := c.Lines()
	lines[0].Quantity = 50
	if c.Lines()[0].Quantity != 1 {
		t.Fatal("mutating Lines() result changed the cart")
	}
}

func TestLine_Total(t *testing.T) {
	l := Line{Item: item("a", 12.5), Quantity: 4}
	if l.Total() != 50 {
		t.Fatalf("Total() = %v", l.Total())
	}
}

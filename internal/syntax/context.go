package syntax

import (
	"errors"
	"fmt"
)

// Errors returned by Context mutations.
var (
	ErrDuplicate  = errors.New("already declared")
	ErrNotFound   = errors.New("not declared")
	ErrPrimitive  = errors.New("name of primitive instruction")
	ErrIdentifier = errors.New("not a valid identifier")
)

// Context maps user-defined instruction names to their declarations.
// Keys are unique and never primitive names. Iteration follows
// declaration order so rendering is deterministic. A nil *Context is
// empty for all read methods. The zero Context is ready to use.
type Context struct {
	order []*Instruction
	elems map[string]*Instruction
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{elems: make(map[string]*Instruction)}
}

// Len returns the number of declared instructions.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Lookup returns the instruction declared as name, or nil.
func (c *Context) Lookup(name string) *Instruction {
	if c == nil {
		return nil
	}
	return c.elems[name]
}

// Has reports whether name is declared.
func (c *Context) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.elems[name]
	return ok
}

// Insert adds inst to the context.
func (c *Context) Insert(inst *Instruction) error {
	if IsPrimitive(inst.Name) {
		return fmt.Errorf("instruction %q: %w", inst.Name, ErrPrimitive)
	}
	if c.Has(inst.Name) {
		return fmt.Errorf("instruction %q: %w", inst.Name, ErrDuplicate)
	}
	if c.elems == nil {
		c.elems = make(map[string]*Instruction)
	}
	c.elems[inst.Name] = inst
	c.order = append(c.order, inst)
	return nil
}

// Remove deletes the instruction declared as name and returns it.
func (c *Context) Remove(name string) *Instruction {
	inst := c.elems[name]
	if inst == nil {
		return nil
	}
	delete(c.elems, name)
	for i, x := range c.order {
		if x == inst {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return inst
}

// Rekey renames the entry oldName to newName. The instruction keeps its
// body and its position in declaration order.
func (c *Context) Rekey(oldName, newName string) error {
	inst := c.elems[oldName]
	switch {
	case inst == nil:
		return fmt.Errorf("instruction %q: %w", oldName, ErrNotFound)
	case !IsIdentifier(newName):
		return fmt.Errorf("new name %q: %w", newName, ErrIdentifier)
	case IsPrimitive(newName):
		return fmt.Errorf("new name %q: %w", newName, ErrPrimitive)
	case oldName == newName:
		return nil
	case c.Has(newName):
		return fmt.Errorf("instruction %q: %w", newName, ErrDuplicate)
	}
	delete(c.elems, oldName)
	inst.Name = newName
	c.elems[newName] = inst
	return nil
}

// Names returns the declared names in declaration order.
func (c *Context) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.order))
	for i, inst := range c.order {
		names[i] = inst.Name
	}
	return names
}

// Instructions returns the declarations in declaration order. The slice
// is shared with the context and must not be modified.
func (c *Context) Instructions() []*Instruction {
	if c == nil {
		return nil
	}
	return c.order
}

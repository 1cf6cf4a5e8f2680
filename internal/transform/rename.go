package transform

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/bl/internal/syntax"
)

// Errors returned by RenameInstruction.
var (
	ErrNotDeclared       = errors.New("instruction not declared")
	ErrAlreadyDeclared   = errors.New("instruction already declared")
	ErrReservedName      = errors.New("name of primitive instruction")
	ErrInvalidIdentifier = errors.New("not a valid identifier")
)

// RenameInstruction renames the user-defined instruction oldName to
// newName and rewrites every call of oldName in the program, including
// calls inside instruction bodies. Nothing is modified when an error is
// returned.
func RenameInstruction(p *syntax.Program, oldName, newName string) error {
	if err := p.Context.Rekey(oldName, newName); err != nil {
		return renameError(oldName, newName, err)
	}
	if oldName == newName {
		return nil
	}

	syntax.Inspect(p, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.CallStmt); ok && c.Name == oldName {
			c.Name = newName
		}
		return true
	})
	return nil
}

// renameError maps a context error onto the rename error kinds.
func renameError(oldName, newName string, err error) error {
	var kind error
	switch {
	case errors.Is(err, syntax.ErrNotFound):
		kind = ErrNotDeclared
	case errors.Is(err, syntax.ErrDuplicate):
		kind = ErrAlreadyDeclared
	case errors.Is(err, syntax.ErrPrimitive):
		kind = ErrReservedName
	case errors.Is(err, syntax.ErrIdentifier):
		kind = ErrInvalidIdentifier
	default:
		return fmt.Errorf("rename %s to %s: %w", oldName, newName, err)
	}
	return fmt.Errorf("rename %s to %s: %q: %w", oldName, newName, culprit(kind, oldName, newName), kind)
}

func culprit(kind error, oldName, newName string) string {
	if kind == ErrNotDeclared {
		return oldName
	}
	return newName
}

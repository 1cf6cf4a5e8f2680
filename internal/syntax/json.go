package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		var insts []interface{}
		if n.Context != nil {
			for _, inst := range n.Context.Instructions() {
				insts = append(insts, toJSON(inst))
			}
		}
		return map[string]interface{}{
			"type":    "Program",
			"pos":     n.pos.String(),
			"name":    n.Name,
			"context": insts,
			"body":    toJSON(n.Body),
		}

	case *Instruction:
		return map[string]interface{}{
			"type": "Instruction",
			"pos":  n.pos.String(),
			"name": n.Name,
			"body": toJSON(n.Body),
		}

	case *Block:
		stmts := make([]interface{}, 0, len(n.Stmts))
		for _, s := range n.Stmts {
			stmts = append(stmts, toJSON(s))
		}
		return map[string]interface{}{
			"type":  BLOCK.String(),
			"pos":   n.pos.String(),
			"stmts": stmts,
		}

	case *IfStmt:
		return map[string]interface{}{
			"type": IF.String(),
			"pos":  n.pos.String(),
			"cond": n.Cond.String(),
			"body": toJSON(n.Body),
		}

	case *IfElseStmt:
		return map[string]interface{}{
			"type": IF_ELSE.String(),
			"pos":  n.pos.String(),
			"cond": n.Cond.String(),
			"then": toJSON(n.Then),
			"else": toJSON(n.Else),
		}

	case *WhileStmt:
		return map[string]interface{}{
			"type": WHILE.String(),
			"pos":  n.pos.String(),
			"cond": n.Cond.String(),
			"body": toJSON(n.Body),
		}

	case *CallStmt:
		return map[string]interface{}{
			"type": CALL.String(),
			"pos":  n.pos.String(),
			"name": n.Name,
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}

// Package transform implements passes over BL syntax trees: primitive
// call counting, IF_ELSE condition simplification and instruction
// renaming, plus a small pipeline runner that sequences passes with
// optional dumps and verification.
package transform

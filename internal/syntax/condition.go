package syntax

import "fmt"

// Condition is a predicate guarding IF, IF_ELSE and WHILE statements.
type Condition uint8

const (
	CondInvalid Condition = iota

	NextIsEmpty
	NextIsNotEmpty
	NextIsEnemy
	NextIsNotEnemy
	NextIsFriend
	NextIsNotFriend
	NextIsWall
	NextIsNotWall
	Random
	True

	condCount
)

var condNames = [...]string{
	CondInvalid:     "INVALID",
	NextIsEmpty:     "NEXT_IS_EMPTY",
	NextIsNotEmpty:  "NEXT_IS_NOT_EMPTY",
	NextIsEnemy:     "NEXT_IS_ENEMY",
	NextIsNotEnemy:  "NEXT_IS_NOT_ENEMY",
	NextIsFriend:    "NEXT_IS_FRIEND",
	NextIsNotFriend: "NEXT_IS_NOT_FRIEND",
	NextIsWall:      "NEXT_IS_WALL",
	NextIsNotWall:   "NEXT_IS_NOT_WALL",
	Random:          "RANDOM",
	True:            "TRUE",
}

// condWords holds the spelling used in BL source.
var condWords = [...]string{
	NextIsEmpty:     "next-is-empty",
	NextIsNotEmpty:  "next-is-not-empty",
	NextIsEnemy:     "next-is-enemy",
	NextIsNotEnemy:  "next-is-not-enemy",
	NextIsFriend:    "next-is-friend",
	NextIsNotFriend: "next-is-not-friend",
	NextIsWall:      "next-is-wall",
	NextIsNotWall:   "next-is-not-wall",
	Random:          "random",
	True:            "true",
}

var condByWord = func() map[string]Condition {
	m := make(map[string]Condition, condCount)
	for c := NextIsEmpty; c < condCount; c++ {
		m[condWords[c]] = c
	}
	return m
}()

// String returns the enum name, e.g. NEXT_IS_NOT_WALL.
func (c Condition) String() string {
	if c < condCount {
		return condNames[c]
	}
	return fmt.Sprintf("Condition(%d)", c)
}

// Word returns the source spelling, e.g. next-is-not-wall.
func (c Condition) Word() string {
	if c > CondInvalid && c < condCount {
		return condWords[c]
	}
	return ""
}

// IsValid reports whether c names an actual condition.
func (c Condition) IsValid() bool {
	return c > CondInvalid && c < condCount
}

// IsNegated reports whether c is one of the four NEXT_IS_NOT_* predicates.
func (c Condition) IsNegated() bool {
	switch c {
	case NextIsNotEmpty, NextIsNotEnemy, NextIsNotFriend, NextIsNotWall:
		return true
	}
	return false
}

// Positive returns the positive counterpart of a negated condition and c
// itself otherwise.
func (c Condition) Positive() Condition {
	if c.IsNegated() {
		return c - 1
	}
	return c
}

// Negate returns the opposite predicate. RANDOM and TRUE have no
// opposite in BL and are returned unchanged.
func (c Condition) Negate() Condition {
	switch {
	case c.IsNegated():
		return c - 1
	case c >= NextIsEmpty && c <= NextIsWall:
		return c + 1
	}
	return c
}

// LookupCondition returns the condition spelled word in BL source.
func LookupCondition(word string) (Condition, bool) {
	c, ok := condByWord[word]
	return c, ok
}

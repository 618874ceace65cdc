package state

import (
	"errors"
	"fmt"
)

var ErrNilState = errors.New("state: transition target is nil")

// TransKind selects how the stacks change after an Update.
type TransKind int

const (
	TransNone TransKind = iota
	TransPop
	TransPush
	TransSwap
)

func (k TransKind) String() string {
	switch k {
	case TransNone:
		return "none"
	case TransPop:
		return "pop"
	case TransPush:
		return "push"
	case TransSwap:
		return "swap"
	default:
		return fmt.Sprintf("TransKind(%d)", int(k))
	}
}

// Trans is returned from State.Update. Next is set only for push and swap.
type Trans struct {
	Kind TransKind
	Next State
}

// None keeps both stacks as they are.
func None() Trans {
	return Trans{Kind: TransNone}
}

// Pop exits the current state and discards its world state.
func Pop() Trans {
	return Trans{Kind: TransPop}
}

// Push saves the current world state and runs next on a fresh one.
func Push(next State) Trans {
	if next == nil {
		panic(fmt.Errorf("%w: push", ErrNilState))
	}
	return Trans{Kind: TransPush, Next: next}
}

// Swap exits the current state and replaces it, and its world state, with
// next on a fresh world state.
func Swap(next State) Trans {
	if next == nil {
		panic(fmt.Errorf("%w: swap", ErrNilState))
	}
	return Trans{Kind: TransSwap, Next: next}
}

func (t Trans) String() string {
	if t.Next == nil {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%T)", t.Kind, t.Next)
}

package microkanren

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is any value the unifier works on: an atom (Symbol, Number, Bool,
// EmptyList), a Var, or a Pair. The set of variants is closed.
type Term interface {
	fmt.Stringer
	display(*strings.Builder)
}

type Symbol string

type Number int

type Bool bool

// Var is a logic variable, identified by the value of a State's counter
// at the moment it was introduced.
type Var int

type Special uint8

const (
	EmptyList Special = iota
)

// Pair is a cons cell. Chains of pairs ending in EmptyList are lists.
type Pair struct {
	Car Term
	Cdr Term
}

func Cons(car, cdr Term) Pair {
	return Pair{Car: car, Cdr: cdr}
}

// List builds a proper list from the given terms.
func List(terms ...Term) Term {
	var out Term = EmptyList
	for i := len(terms) - 1; i >= 0; i-- {
		out = Pair{Car: terms[i], Cdr: out}
	}
	return out
}

// remainder is formatting logic

func (s Symbol) String() string { return string(s) }

func (s Symbol) display(b *strings.Builder) { b.WriteString(string(s)) }

func (n Number) String() string { return strconv.Itoa(int(n)) }

func (n Number) display(b *strings.Builder) { b.WriteString(n.String()) }

func (t Bool) String() string {
	if t {
		return "#t"
	}
	return "#f"
}

func (t Bool) display(b *strings.Builder) { b.WriteString(t.String()) }

func (v Var) String() string { return "#" + strconv.Itoa(int(v)) }

func (v Var) display(b *strings.Builder) { b.WriteString(v.String()) }

func (s Special) String() string {
	switch s {
	case EmptyList:
		return "()"
	default:
		panic(fmt.Sprintf("unknown special %d", uint8(s)))
	}
}

func (s Special) display(b *strings.Builder) { b.WriteString(s.String()) }

func (p Pair) String() string {
	var b strings.Builder
	p.display(&b)
	return b.String()
}

// display keeps its own stack of pending terms and list tails, so neither
// long lists nor deeply nested cars grow the goroutine stack.
func (p Pair) display(b *strings.Builder) {
	type pending struct {
		term Term
		tail bool
	}
	stack := []pending{{term: p}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pair, isPair := top.term.(Pair)
		switch {
		case !top.tail && isPair:
			b.WriteByte('(')
			stack = append(stack, pending{term: pair.Cdr, tail: true}, pending{term: pair.Car})
		case !top.tail:
			top.term.display(b)
		case top.term == EmptyList:
			b.WriteByte(')')
		case isPair:
			b.WriteByte(' ')
			stack = append(stack, pending{term: pair.Cdr, tail: true}, pending{term: pair.Car})
		default:
			b.WriteString(" . ")
			top.term.display(b)
			b.WriteByte(')')
		}
	}
}

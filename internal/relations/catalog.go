package relations

import (
	"sort"

	mk "github.com/deosjr/microkanren"
)

// Example is a named query. The query variable is always variable 0.
type Example struct {
	Name        string
	Description string
	// Infinite examples only terminate when a result count is given.
	Infinite bool
	Goal     func() mk.Goal
}

var catalog = map[string]Example{}

func register(e Example) {
	catalog[e.Name] = e
}

func init() {
	register(Example{
		Name:        "a-and-b",
		Description: "a = 7 and b is 5 or 6",
		Goal: func() mk.Goal {
			return mk.Conj(
				mk.CallFresh(func(a mk.Term) mk.Goal { return mk.Equalo(a, mk.Number(7)) }),
				mk.CallFresh(func(b mk.Term) mk.Goal {
					return mk.Disj(mk.Equalo(b, mk.Number(5)), mk.Equalo(b, mk.Number(6)))
				}),
			)
		},
	})
	register(Example{
		Name:        "fives",
		Description: "q is 5, forever",
		Infinite:    true,
		Goal: func() mk.Goal {
			return mk.CallFresh(Fives)
		},
	})
	register(Example{
		Name:        "appendo",
		Description: "every split of (a b c d) into two lists",
		Goal: func() mk.Goal {
			return mk.FreshN(3, func(v ...mk.Term) mk.Goal {
				q, l, s := v[0], v[1], v[2]
				return mk.Conj(
					mk.Equalo(q, mk.List(l, s)),
					Appendo(l, s, mk.List(mk.Symbol("a"), mk.Symbol("b"), mk.Symbol("c"), mk.Symbol("d"))),
				)
			})
		},
	})
	register(Example{
		Name:        "membero",
		Description: "every member of (tea coffee water)",
		Goal: func() mk.Goal {
			return mk.CallFresh(func(q mk.Term) mk.Goal {
				return Membero(q, mk.List(mk.Symbol("tea"), mk.Symbol("coffee"), mk.Symbol("water")))
			})
		},
	})
	register(Example{
		Name:        "pluso",
		Description: "every pair of numerals summing to 6",
		Goal: func() mk.Goal {
			six, _ := BuildNum(6)
			return mk.Fresh3(func(q, x, y mk.Term) mk.Goal {
				return mk.Conj(
					mk.Equalo(q, mk.List(x, y)),
					PlusO(x, y, six),
				)
			})
		},
	})
}

// Lookup returns the example registered under name.
func Lookup(name string) (Example, bool) {
	e, ok := catalog[name]
	return e, ok
}

// Examples returns all examples sorted by name.
func Examples() []Example {
	out := make([]Example, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

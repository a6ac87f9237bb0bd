// Package relations holds relations written on top of the microkanren core.
// They are used as fixtures by the tests and the mk command.
package relations

import mk "github.com/deosjr/microkanren"

func Nevero() mk.Goal {
	return mk.Delay(func() mk.Goal { return Nevero() })
}

func Fives(x mk.Term) mk.Goal {
	return mk.Disj(mk.Equalo(x, mk.Number(5)), mk.Delay(func() mk.Goal { return Fives(x) }))
}

func Sixes(x mk.Term) mk.Goal {
	return mk.Disj(mk.Equalo(x, mk.Number(6)), mk.Delay(func() mk.Goal { return Sixes(x) }))
}

// Appendo relates two lists l and s to their concatenation out.
func Appendo(l, s, out mk.Term) mk.Goal {
	return mk.Delay(func() mk.Goal {
		return mk.Disj(
			mk.Conj(mk.Equalo(mk.EmptyList, l), mk.Equalo(s, out)),
			mk.Fresh3(func(a, d, res mk.Term) mk.Goal {
				return mk.ConjPlus(
					mk.Equalo(mk.Cons(a, d), l),
					mk.Equalo(mk.Cons(a, res), out),
					Appendo(d, s, res),
				)
			}),
		)
	})
}

// Membero succeeds once for every position at which x unifies with an
// element of l.
func Membero(x, l mk.Term) mk.Goal {
	return mk.Delay(func() mk.Goal {
		return mk.Fresh2(func(a, d mk.Term) mk.Goal {
			return mk.Conj(
				mk.Equalo(mk.Cons(a, d), l),
				mk.Disj(mk.Equalo(a, x), Membero(x, d)),
			)
		})
	})
}

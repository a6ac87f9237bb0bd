package microkanren

// Goal maps a State to the stream of states in which it succeeds. An empty
// stream means the goal fails on that branch.
type Goal func(State) Stream

// Equalo succeeds once if u and v unify under the state's substitution.
func Equalo(u, v Term) Goal {
	return func(st State) Stream {
		s, ok := st.Sub.Unify(u, v)
		if !ok {
			return empty
		}
		return unit(State{Sub: s, Counter: st.Counter})
	}
}

// CallFresh introduces a new variable, numbered after the state's counter,
// and evaluates the goal f builds from it.
func CallFresh(f func(x Term) Goal) Goal {
	return func(st State) Stream {
		v := Var(st.Counter)
		newstate := State{Sub: st.Sub, Counter: st.Counter + 1}
		return f(v)(newstate)
	}
}

// Disj is logical or: the states of g1 followed by the states of g2, both
// evaluated from the same input state.
func Disj(g1, g2 Goal) Goal {
	return func(st State) Stream {
		return suspend(func() Stream {
			return mplus(g1(st), suspend(func() Stream { return g2(st) }))
		})
	}
}

// Conj is logical and: g2 is evaluated against each state of g1 in turn.
func Conj(g1, g2 Goal) Goal {
	return func(st State) Stream {
		return suspend(func() Stream {
			return bind(g1(st), g2)
		})
	}
}

// Delay defers building a goal until it is applied. Recursive relations
// wrap their self-reference in Delay so constructing them terminates.
func Delay(f func() Goal) Goal {
	return func(st State) Stream {
		return suspend(func() Stream { return f()(st) })
	}
}

// DisjPlus folds Disj right to left over goals. It fails with no goals.
func DisjPlus(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return fail
	case 1:
		return goals[0]
	}
	return Disj(goals[0], DisjPlus(goals[1:]...))
}

// ConjPlus folds Conj right to left over goals. It succeeds with no goals.
func ConjPlus(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return succeed
	case 1:
		return goals[0]
	}
	return Conj(goals[0], ConjPlus(goals[1:]...))
}

func succeed(st State) Stream { return unit(st) }

func fail(State) Stream { return empty }

// missing macros here; Fresh2 and Fresh3 allocate consecutive variables
// the same way nested CallFresh would

func Fresh2(f func(x, y Term) Goal) Goal {
	return func(st State) Stream {
		x := Var(st.Counter)
		y := Var(st.Counter + 1)
		newstate := State{Sub: st.Sub, Counter: st.Counter + 2}
		return f(x, y)(newstate)
	}
}

func Fresh3(f func(x, y, z Term) Goal) Goal {
	return func(st State) Stream {
		x := Var(st.Counter)
		y := Var(st.Counter + 1)
		z := Var(st.Counter + 2)
		newstate := State{Sub: st.Sub, Counter: st.Counter + 3}
		return f(x, y, z)(newstate)
	}
}

// FreshN allocates n consecutive variables.
func FreshN(n int, f func(vars ...Term) Goal) Goal {
	return func(st State) Stream {
		vars := make([]Term, n)
		for i := range vars {
			vars[i] = Var(st.Counter + i)
		}
		newstate := State{Sub: st.Sub, Counter: st.Counter + n}
		return f(vars...)(newstate)
	}
}

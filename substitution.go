package microkanren

import "fmt"

// Association binds one variable to one term.
type Association struct {
	Var  Var
	Term Term
}

type assoc struct {
	Association
	next *assoc
}

// Substitution is an immutable sequence of associations, most recent first.
// The zero value is the empty substitution. Extending a substitution shares
// structure with it, so the parent remains usable by sibling branches.
type Substitution struct {
	head  *assoc
	index *index
	size  int
}

// NewSubstitution builds a substitution from associations listed most
// recent first, as returned by Associations. It does not run the occurs check.
func NewSubstitution(as ...Association) Substitution {
	var s Substitution
	for i := len(as) - 1; i >= 0; i-- {
		s = s.prepend(as[i].Var, as[i].Term)
	}
	return s
}

func (s Substitution) Len() int {
	return s.size
}

// Associations returns the bindings most recent first.
func (s Substitution) Associations() []Association {
	out := make([]Association, 0, s.size)
	for a := s.head; a != nil; a = a.next {
		out = append(out, a.Association)
	}
	return out
}

// Lookup returns the first association for v.
func (s Substitution) Lookup(v Var) (Association, bool) {
	t, ok := s.index.lookup(v)
	if !ok {
		return Association{}, false
	}
	return Association{Var: v, Term: t}, true
}

// Walk dereferences u until it is no longer a bound variable.
func (s Substitution) Walk(u Term) Term {
	for {
		uvar, ok := u.(Var)
		if !ok {
			return u
		}
		e, ok := s.index.lookup(uvar)
		if !ok {
			return u
		}
		u = e
	}
}

// WalkStar walks u and, recursively, every component of the pairs it
// reaches, yielding a term in which only unbound variables remain.
func (s Substitution) WalkStar(u Term) Term {
	type frame struct {
		car  Term
		cdr  Term
		done int
	}
	var (
		result Term
		stack  []*frame
	)
	// pending holds the next term to resolve; results are folded back into
	// the frames on the stack as pairs complete.
	pending := u
	for {
		if pending != nil {
			v := s.Walk(pending)
			pending = nil
			p, ok := v.(Pair)
			if !ok {
				result = v
			} else {
				stack = append(stack, &frame{car: p.Car, cdr: p.Cdr})
				pending = p.Car
				continue
			}
		}
		if len(stack) == 0 {
			return result
		}
		top := stack[len(stack)-1]
		if top.done == 0 {
			top.car = result
			top.done = 1
			pending = top.cdr
			continue
		}
		top.cdr = result
		stack = stack[:len(stack)-1]
		result = Pair{Car: top.car, Cdr: top.cdr}
	}
}

// Occurs reports whether v appears in u once u and its pair components
// have been walked.
func (s Substitution) Occurs(v Var, u Term) bool {
	work := []Term{u}
	for len(work) > 0 {
		t := s.Walk(work[len(work)-1])
		work = work[:len(work)-1]
		switch tt := t.(type) {
		case Var:
			if tt == v {
				return true
			}
		case Pair:
			work = append(work, tt.Cdr, tt.Car)
		}
	}
	return false
}

// Extend prepends the binding v -> e. It fails if the binding would make
// the substitution cyclic.
func (s Substitution) Extend(v Var, e Term) (Substitution, bool) {
	if s.Occurs(v, e) {
		return Substitution{}, false
	}
	return s.prepend(v, e), true
}

func (s Substitution) prepend(v Var, e Term) Substitution {
	return Substitution{
		head:  &assoc{Association: Association{Var: v, Term: e}, next: s.head},
		index: s.index.insert(v, e),
		size:  s.size + 1,
	}
}

// Unify returns the substitution that makes u and v equal, extending s.
// Pairs are unified car first; the cdr is unified under the bindings the
// car produced.
func (s Substitution) Unify(u, v Term) (Substitution, bool) {
	type job struct{ u, v Term }
	work := []job{{u, v}}
	for len(work) > 0 {
		j := work[len(work)-1]
		work = work[:len(work)-1]
		u0 := s.Walk(j.u)
		v0 := s.Walk(j.v)
		if identical(u0, v0) {
			continue
		}
		if uvar, ok := u0.(Var); ok {
			next, ok := s.Extend(uvar, v0)
			if !ok {
				return Substitution{}, false
			}
			s = next
			continue
		}
		if vvar, ok := v0.(Var); ok {
			next, ok := s.Extend(vvar, u0)
			if !ok {
				return Substitution{}, false
			}
			s = next
			continue
		}
		upair, uok := u0.(Pair)
		vpair, vok := v0.(Pair)
		if !uok || !vok {
			return Substitution{}, false
		}
		work = append(work, job{upair.Cdr, vpair.Cdr}, job{upair.Car, vpair.Car})
	}
	return s, true
}

// identical compares atoms and variables. Pairs are never identical here;
// the unifier descends into them instead.
func identical(u, v Term) bool {
	switch u.(type) {
	case Pair:
		return false
	case Symbol, Number, Bool, Special, Var:
		return u == v
	default:
		panic(fmt.Sprintf("unknown term %T", u))
	}
}

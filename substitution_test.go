package microkanren

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(as ...Association) Substitution { return NewSubstitution(as...) }

func binding(v Var, t Term) Association { return Association{Var: v, Term: t} }

var (
	a = Symbol("a")
	b = Symbol("b")
	c = Symbol("c")
	d = Symbol("d")
	e = Symbol("e")
)

func TestLookup(t *testing.T) {
	for _, tt := range []struct {
		name   string
		s      Substitution
		v      Var
		want   Association
		wantOK bool
	}{
		{name: "empty", s: sub(), v: 3},
		{name: "not found", s: sub(binding(1, a), binding(2, Var(1))), v: 3},
		{name: "found", s: sub(binding(0, Symbol("g")), binding(3, Var(4)), binding(4, a)), v: 3, want: binding(3, Var(4)), wantOK: true},
		{name: "most recent wins", s: sub(binding(3, b), binding(3, a)), v: 3, want: binding(3, b), wantOK: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.s.Lookup(tt.v)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWalk(t *testing.T) {
	for _, tt := range []struct {
		name string
		u    Term
		s    Substitution
		want Term
	}{
		{name: "unbound variable", u: Var(5), s: sub(), want: Var(5)},
		{name: "not in substitution", u: Var(5), s: sub(binding(0, a)), want: Var(5)},
		{name: "bound", u: Var(1), s: sub(binding(1, b)), want: b},
		{name: "chain", u: Var(1), s: sub(binding(1, Var(0)), binding(0, a)), want: a},
		{name: "atom", u: a, s: sub(binding(1, b)), want: a},
		{name: "pair is not descended", u: Cons(Var(1), a), s: sub(binding(1, b)), want: Cons(Var(1), a)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Walk(tt.u))
		})
	}
}

func TestWalkUnboundIsIdentity(t *testing.T) {
	for v := Var(0); v < 50; v++ {
		assert.Equal(t, Term(v), Substitution{}.Walk(v))
	}
}

func TestWalkStar(t *testing.T) {
	s := sub(binding(0, List(Var(1), Var(2))), binding(1, a), binding(2, Cons(b, Var(3))))
	assert.Equal(t, List(a, Cons(b, Var(3))), s.WalkStar(Var(0)))
	assert.Equal(t, a, s.WalkStar(Var(1)))
	assert.Equal(t, Var(3), s.WalkStar(Var(3)))
}

func TestOccurs(t *testing.T) {
	for _, tt := range []struct {
		name string
		v    Var
		u    Term
		s    Substitution
		want bool
	}{
		{name: "atom", v: 5, u: Symbol("x"), s: sub()},
		{name: "same variable", v: 5, u: Var(5), s: sub(), want: true},
		{name: "pair without it", v: 5, u: Cons(Var(0), a), s: sub()},
		{name: "in cdr", v: 5, u: Cons(Var(3), Var(5)), s: sub(), want: true},
		{name: "in car", v: 5, u: Cons(Var(5), Var(3)), s: sub(), want: true},
		{name: "through walked components", v: 5, u: Cons(Var(1), Var(2)), s: sub(binding(1, b), binding(2, Var(5))), want: true},
		{name: "through chains", v: 3, u: Cons(Var(1), a), s: sub(binding(1, Var(0)), binding(0, Var(3))), want: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Occurs(tt.v, tt.u))
		})
	}
}

func TestExtend(t *testing.T) {
	_, ok := Substitution{}.Extend(5, Var(5))
	assert.False(t, ok, "self reference must be rejected")

	_, ok = Substitution{}.Extend(5, Cons(a, Var(5)))
	assert.False(t, ok, "cycle through a pair must be rejected")

	s, ok := Substitution{}.Extend(5, Cons(Var(1), Var(2)))
	require.True(t, ok)
	assert.Equal(t, []Association{binding(5, Cons(Var(1), Var(2)))}, s.Associations())
}

func TestExtendSharesStructure(t *testing.T) {
	base := sub(binding(0, a))
	left, ok := base.Extend(1, b)
	require.True(t, ok)
	right, ok := base.Extend(1, c)
	require.True(t, ok)

	assert.Equal(t, []Association{binding(0, a)}, base.Associations())
	assert.Equal(t, []Association{binding(1, b), binding(0, a)}, left.Associations())
	assert.Equal(t, []Association{binding(1, c), binding(0, a)}, right.Associations())
	assert.Same(t, base.head, left.head.next)
	assert.Same(t, base.head, right.head.next)
}

func TestUnify(t *testing.T) {
	for _, tt := range []struct {
		name   string
		u, v   Term
		s      Substitution
		want   []Association
		wantOK bool
	}{
		{name: "same variable", u: Var(5), v: Var(5), s: sub(binding(0, a)), want: []Association{binding(0, a)}, wantOK: true},
		{name: "same pair", u: Cons(Var(1), Var(2)), v: Cons(Var(1), Var(2)), s: sub(binding(0, a)), want: []Association{binding(0, a)}, wantOK: true},
		{name: "same symbol", u: a, v: a, s: sub(binding(0, a)), want: []Association{binding(0, a)}, wantOK: true},
		{name: "variable left", u: Var(5), v: a, s: sub(), want: []Association{binding(5, a)}, wantOK: true},
		{name: "variable right", u: b, v: Var(6), s: sub(), want: []Association{binding(6, b)}, wantOK: true},
		{name: "two variables", u: Var(0), v: Var(1), s: sub(), want: []Association{binding(0, Var(1))}, wantOK: true},
		{name: "mismatched pairs", u: Cons(a, b), v: Cons(c, d), s: sub()},
		{name: "car binds but cdr fails", u: Cons(Var(1), a), v: Cons(b, c), s: sub()},
		{name: "atom against pair", u: a, v: Cons(a, a), s: sub()},
		{name: "number against symbol", u: Number(1), v: a, s: sub()},
		{name: "bool against empty list", u: Bool(false), v: EmptyList, s: sub()},
		{name: "equal ground pairs", u: Cons(a, b), v: Cons(a, b), s: sub(), want: []Association{}, wantOK: true},
		{name: "overlapping pairs", u: Cons(Var(1), b), v: Cons(a, Var(0)), s: sub(), want: []Association{binding(0, b), binding(1, a)}, wantOK: true},
		{
			name:   "nested lists bind in order",
			u:      Cons(a, Cons(b, Cons(c, Cons(Var(4), Var(5))))),
			v:      Cons(Var(1), Cons(Var(2), Cons(c, Cons(d, e)))),
			s:      sub(),
			want:   []Association{binding(5, e), binding(4, d), binding(2, b), binding(1, a)},
			wantOK: true,
		},
		{
			name:   "shared variables are skipped",
			u:      Cons(a, Cons(b, Cons(Var(3), Cons(Var(4), Var(5))))),
			v:      Cons(Var(1), Cons(Var(2), Cons(Var(3), Cons(d, e)))),
			s:      sub(),
			want:   []Association{binding(5, e), binding(4, d), binding(2, b), binding(1, a)},
			wantOK: true,
		},
		{name: "existing binding", u: Cons(Var(1), a), v: Cons(Var(2), a), s: sub(binding(2, Var(1))), want: []Association{binding(2, Var(1))}, wantOK: true},
		{name: "cdr sees car bindings", u: Cons(Var(0), Var(0)), v: Cons(a, b), s: sub()},
		{name: "occurs check", u: Var(0), v: List(Var(0)), s: sub()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.s.Unify(tt.u, tt.v)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got.Associations()); diff != "" {
				t.Errorf("associations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnifyGroundIsIdentity(t *testing.T) {
	s := sub(binding(0, a), binding(1, Number(3)))
	for _, term := range []Term{a, Number(4), Bool(true), EmptyList, List(a, b, List(c, Number(1))), Cons(a, b)} {
		got, ok := s.Unify(term, term)
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestUnifyDeepTerms(t *testing.T) {
	const depth = 200_000
	terms := make([]Term, depth)
	vars := make([]Term, depth)
	for i := range terms {
		terms[i] = Number(i)
		vars[i] = Var(i)
	}
	s, ok := Substitution{}.Unify(List(vars...), List(terms...))
	require.True(t, ok)
	assert.Equal(t, depth, s.Len())
	assert.Equal(t, Term(Number(depth-1)), s.Walk(Var(depth-1)))
	walked := s.WalkStar(List(vars...))
	for i := 0; i < depth; i++ {
		p, ok := walked.(Pair)
		require.True(t, ok, "element %d", i)
		require.Equal(t, Term(Number(i)), p.Car)
		walked = p.Cdr
	}
	assert.Equal(t, Term(EmptyList), walked)

	// a long chain of variables still walks
	chain := Substitution{}
	for i := 0; i < depth-1; i++ {
		chain = chain.prepend(Var(i), Var(i+1))
	}
	assert.Equal(t, Term(Var(depth-1)), chain.Walk(Var(0)))
	assert.True(t, chain.Occurs(Var(depth-1), Var(0)))
}

func TestIdenticalRejectsNilTerm(t *testing.T) {
	assert.PanicsWithValue(t, "unknown term <nil>", func() { identical(nil, a) })
	assert.False(t, identical(Cons(a, b), Cons(a, b)))
	assert.True(t, identical(Var(2), Var(2)))
}

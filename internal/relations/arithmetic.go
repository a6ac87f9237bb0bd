// after Appendix B of http://webyrd.net/quines/quines.pdf
package relations

import (
	"fmt"

	mk "github.com/deosjr/microkanren"
)

const (
	n0 = mk.Number(0)
	n1 = mk.Number(1)
)

var p1 = mk.List(n1)

// BuildNum encodes n as a little-endian list of bits (an Oleg numeral).
func BuildNum(n int) (mk.Term, error) {
	if n < 0 {
		return nil, fmt.Errorf("only non-negative integers supported, got %d", n)
	}
	var bits []mk.Term
	for ; n > 0; n /= 2 {
		bits = append(bits, mk.Number(n%2))
	}
	return mk.List(bits...), nil
}

// ParseNum decodes a fully walked Oleg numeral.
func ParseNum(e mk.Term) (int, error) {
	n := 0
	i := 1
	for e != mk.EmptyList {
		p, ok := e.(mk.Pair)
		if !ok {
			return 0, fmt.Errorf("not a valid oleg numeral: expected list, got %v", e)
		}
		x, ok := p.Car.(mk.Number)
		if !ok || (x != n0 && x != n1) {
			return 0, fmt.Errorf("not a valid oleg numeral: expected bit, got %v", p.Car)
		}
		n += int(x) * i
		i += i
		e = p.Cdr
	}
	return n, nil
}

func ZeroO(n mk.Term) mk.Goal {
	return mk.Equalo(mk.EmptyList, n)
}

func PosO(n mk.Term) mk.Goal {
	return mk.Fresh2(func(a, d mk.Term) mk.Goal {
		return mk.Equalo(mk.Cons(a, d), n)
	})
}

func Gt1O(n mk.Term) mk.Goal {
	return mk.Fresh3(func(a, ad, dd mk.Term) mk.Goal {
		return mk.Equalo(mk.Cons(a, mk.Cons(ad, dd)), n)
	})
}

func bits(b, x, y, r, c mk.Term, vb, vx, vy, vr, vc mk.Number) mk.Goal {
	return mk.ConjPlus(
		mk.Equalo(vb, b), mk.Equalo(vx, x), mk.Equalo(vy, y), mk.Equalo(vr, r), mk.Equalo(vc, c),
	)
}

// FullAdderO holds when b + x + y = r + 2c for bits b, x, y, r, c.
func FullAdderO(b, x, y, r, c mk.Term) mk.Goal {
	return mk.DisjPlus(
		bits(b, x, y, r, c, 0, 0, 0, 0, 0),
		bits(b, x, y, r, c, 1, 0, 0, 1, 0),
		bits(b, x, y, r, c, 0, 1, 0, 1, 0),
		bits(b, x, y, r, c, 1, 1, 0, 0, 1),
		bits(b, x, y, r, c, 0, 0, 1, 1, 0),
		bits(b, x, y, r, c, 1, 0, 1, 0, 1),
		bits(b, x, y, r, c, 0, 1, 1, 0, 1),
		bits(b, x, y, r, c, 1, 1, 1, 1, 1),
	)
}

func adderO(d, n, m, r mk.Term) mk.Goal {
	return mk.Delay(func() mk.Goal {
		return mk.DisjPlus(
			mk.ConjPlus(mk.Equalo(n0, d), mk.Equalo(mk.EmptyList, m), mk.Equalo(n, r)),
			mk.ConjPlus(mk.Equalo(n0, d), mk.Equalo(mk.EmptyList, n), mk.Equalo(m, r), PosO(m)),
			mk.ConjPlus(mk.Equalo(n1, d), mk.Equalo(mk.EmptyList, m), adderO(n0, n, p1, r)),
			mk.ConjPlus(mk.Equalo(n1, d), mk.Equalo(mk.EmptyList, n), PosO(m), adderO(n0, p1, m, r)),
			mk.ConjPlus(mk.Equalo(p1, n), mk.Equalo(p1, m), mk.Fresh2(func(a, c mk.Term) mk.Goal {
				return mk.Conj(mk.Equalo(mk.List(a, c), r), FullAdderO(d, n1, n1, a, c))
			})),
			mk.Conj(mk.Equalo(p1, n), genAdderO(d, n, m, r)),
			mk.ConjPlus(mk.Equalo(p1, m), Gt1O(n), Gt1O(r), adderO(d, p1, n, r)),
			mk.Conj(Gt1O(n), genAdderO(d, n, m, r)),
		)
	})
}

func genAdderO(d, n, m, r mk.Term) mk.Goal {
	return mk.FreshN(7, func(v ...mk.Term) mk.Goal {
		a, b, c, e, x, y, z := v[0], v[1], v[2], v[3], v[4], v[5], v[6]
		return mk.ConjPlus(
			mk.Equalo(mk.Cons(a, x), n),
			mk.Equalo(mk.Cons(b, y), m), PosO(y),
			mk.Equalo(mk.Cons(c, z), r), PosO(z),
			FullAdderO(d, a, b, c, e),
			adderO(e, x, y, z),
		)
	})
}

// PlusO holds when n + m = k over Oleg numerals.
func PlusO(n, m, k mk.Term) mk.Goal {
	return adderO(n0, n, m, k)
}

func MinusO(n, m, k mk.Term) mk.Goal {
	return PlusO(m, k, n)
}

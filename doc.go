// Package microkanren is a small relational programming core: terms and
// immutable substitutions, a unifier with occurs check, the goal
// combinators Equalo, CallFresh, Conj and Disj, and a driver that takes a
// bounded number of states from a goal's lazily produced stream.
package microkanren

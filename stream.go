package microkanren

import "context"

type streamKind uint8

const (
	streamEmpty streamKind = iota
	streamMature
	streamImmature
)

// Stream is the lazily produced result of applying a goal to a State. Its
// body is either exhausted, one State followed by the rest of the stream, or
// a suspended computation that yields the next stream when forced. Streams
// queued with mplus follow the body in order.
type Stream struct {
	kind  streamKind
	head  State
	rest  *Stream
	thunk func() Stream
	then  *queue
}

// queue is a persistent list of streams still to be yielded.
type queue struct {
	str  Stream
	next *queue
}

var empty = Stream{kind: streamEmpty}

func unit(st State) Stream {
	return Stream{kind: streamMature, head: st, rest: &empty}
}

func suspend(f func() Stream) Stream {
	return Stream{kind: streamImmature, thunk: f}
}

func (s Stream) exhausted() bool {
	return s.kind == streamEmpty && s.then == nil
}

// after returns s followed by the streams in q. It copies only the nodes
// of s's own queue, which stays short: goals hand back fresh streams.
func (s Stream) after(q *queue) Stream {
	if q == nil {
		return s
	}
	var own []Stream
	for n := s.then; n != nil; n = n.next {
		own = append(own, n.str)
	}
	for i := len(own) - 1; i >= 0; i-- {
		q = &queue{str: own[i], next: q}
	}
	s.then = q
	return s
}

// normalize moves past exhausted bodies to the first queued stream.
func (s Stream) normalize() Stream {
	for s.kind == streamEmpty && s.then != nil {
		s = s.then.str.after(s.then.next)
	}
	return s
}

// step forces at most one suspension.
func (s Stream) step() Stream {
	s = s.normalize()
	if s.kind == streamImmature {
		return s.thunk().after(s.then)
	}
	return s
}

// tail is everything after the head of a mature stream.
func (s Stream) tail() Stream {
	return (*s.rest).after(s.then)
}

// mplus yields every state of s1, then every state of s2. Appending to
// the queue keeps left-nested disjunctions linear in their results.
func mplus(s1, s2 Stream) Stream {
	if s2.exhausted() {
		return s1
	}
	if s1.exhausted() {
		return s2
	}
	return s1.after(&queue{str: s2})
}

// bind applies g to every state of s in order and concatenates the results.
func bind(s Stream, g Goal) Stream {
	s = s.normalize()
	switch s.kind {
	case streamEmpty:
		return empty
	case streamImmature:
		return suspend(func() Stream { return bind(s.step(), g) })
	default:
		rest := s.tail()
		if rest.exhausted() {
			return g(s.head)
		}
		return mplus(g(s.head), suspend(func() Stream { return bind(rest, g) }))
	}
}

// Take returns at most n states of str, fewer if str runs out first. A
// negative n is treated as zero; use TakeAll for every state.
func Take(n int, str Stream) []State {
	if n < 0 {
		n = 0
	}
	states, _, _ := drive(context.Background(), n, str, 0)
	return states
}

// TakeAll returns every state of str, which must be finite.
func TakeAll(str Stream) []State {
	states, _, _ := drive(context.Background(), -1, str, 0)
	return states
}

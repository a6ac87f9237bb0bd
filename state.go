package microkanren

import "fmt"

// State is one branch of a search: the bindings made so far and the id the
// next fresh variable will get.
type State struct {
	Sub     Substitution
	Counter int
}

var EmptyState = State{}

func (st State) String() string {
	return fmt.Sprintf("%v c=%d", st.Sub.Associations(), st.Counter)
}

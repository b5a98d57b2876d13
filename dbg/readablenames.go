package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable labels for the shapes flying through a debugging session. Slices
// and pointers stringify as hex soup; this hands out memoized random
// petnames keyed by an integer id instead, so the same polygon keeps the
// same name for the lifetime of the process. It leaks the memo on purpose,
// names are generated lazily and debugging sessions are short.

var memo map[int]string

func init() {
	memo = make(map[int]string)
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that "BoldMarmot" is not the same shape between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized petname for the given id.
func Name(id int) string {
	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}

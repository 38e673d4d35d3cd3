package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, which makes frames and
// other transient structures easy to tell apart in debug output. Names are
// memoized forever, so this leaks, but only when it's actually used.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Labels depend on the order they are asked for anyway, so seed them
	// randomly and nobody mistakes one for a stable identifier.
	petname.NonDeterministicMode()
}

// Name gives bodies registered without an ID a label a person can tell apart
// at a glance, like "BraveOtter". Asking again about the same pointer returns
// the same label. The table is never pruned.
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

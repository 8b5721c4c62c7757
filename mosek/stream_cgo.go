//go:build mosek

package mosek

/*
#include <stdint.h>
*/
import "C"

import "runtime/cgo"

//export gomosekStream
func gomosekStream(handle C.uintptr_t, msg *C.char) {
	if fn, ok := cgo.Handle(handle).Value().(func(string)); ok {
		fn(C.GoString(msg))
	}
}

func newStreamHandle(fn func(string)) uintptr {
	return uintptr(cgo.NewHandle(fn))
}

func deleteStreamHandle(h uintptr) {
	cgo.Handle(h).Delete()
}

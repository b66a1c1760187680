// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ErrorKind classifies why an operation could not proceed. The guest
// compiler is expected to prevent surfacing any of these from user
// code; when one does reach here it is unrecoverable by contract.
type ErrorKind string

const (
	TypeError         ErrorKind = "TypeError"
	IndexError        ErrorKind = "IndexError"
	KeyError          ErrorKind = "KeyError"
	ValueError        ErrorKind = "ValueError"
	ZeroDivisionError ErrorKind = "ZeroDivisionError"
	MemoryError       ErrorKind = "MemoryError"
)

// exit is the process-termination call abort uses. Tests substitute a
// panicking stand-in so the abort path can be exercised without killing
// the test binary; production code never overrides it.
var exit = os.Exit

// abort writes a single diagnostic line to stderr and terminates the
// process. Nothing upstream of this call ever catches or retries —
// per spec this core has no exception mechanism.
func abort(kind ErrorKind, format string, args ...any) {
	err := errors.Wrap(fmt.Errorf(format, args...), string(kind))
	fmt.Fprintln(os.Stderr, err.Error())
	exit(1)
}

// abortOOM reports allocator exhaustion. The core has no higher-level
// recovery model for it: out-of-memory is always fatal.
func abortOOM(what string) {
	abort(MemoryError, "out of memory allocating %s", what)
}

// safeMake allocates n bytes, routing a failing or unreasonable
// request through abortOOM (§4.1) instead of letting an allocation
// panic escape uncontrolled.
func safeMake(n uintptr, what string) (mem []byte) {
	defer func() {
		if recover() != nil {
			abortOOM(what)
		}
	}()
	mem = make([]byte, n)
	return mem
}

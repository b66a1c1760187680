// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

// PageSize is an advisory page-size knob for compiled front-ends. No
// code in this package reads it: a pool's page size is always
// blocksPerPage * blockTotal (pages.go), whatever PageSize holds.
var PageSize uintptr = 4096

// SetPageSize updates the package-level page size advisory.
func SetPageSize(size int) {
	PageSize = uintptr(size)
}

// noCopy guards a type against accidental copying once it's in use
// (go vet's -copylocks flags any type embedding it). Allocator and
// Runtime both embed one: copying either mid-use would duplicate page
// lists and free lists that must stay singular.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

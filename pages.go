// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package corert

import "unsafe"

// page is a contiguous allocation holding blocksPerPage blocks for one
// size-classed pool. Pages live on one of two doubly-linked lists per
// pool (partial: at least one free slot; full: none) so alloc/free
// never have to scan for space.
type page struct {
	prev, next *page
	usedCount  int
	freeHead   unsafe.Pointer // first free block's hidden header, or nil
	mem        []byte         // backing storage; keeps the arena alive and GC-visible
}

// blockHeader is hidden immediately before the payload pointer handed
// back to callers. It lets free() recover the owning page from any
// live payload pointer without a separate lookup table.
type blockHeader struct {
	page *page
}

var blockHeaderSize = unsafe.Sizeof(blockHeader{})
var ptrWidth = unsafe.Sizeof(uintptr(0))

func unlinkPage(head **page, p *page) {
	if p.prev != nil {
		p.prev.next = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	}
	if *head == p {
		*head = p.next
	}
	p.next, p.prev = nil, nil
}

func pushPage(head **page, p *page) {
	p.next = *head
	p.prev = nil
	if *head != nil {
		(*head).prev = p
	}
	*head = p
}

// sizeClassPool serves fixed-size blocks of payloadSize bytes, grouped
// into pages of blocksPerPage blocks each.
type sizeClassPool struct {
	payloadSize   uintptr
	blockTotal    uintptr // blockHeaderSize + payload, payload floored at ptrWidth for the free-list link
	blocksPerPage uintptr
	partial       *page
	full          *page
}

func newSizeClassPool(payloadSize, blocksPerPage uintptr) *sizeClassPool {
	required := payloadSize
	if required < ptrWidth {
		required = ptrWidth
	}
	return &sizeClassPool{
		payloadSize:   payloadSize,
		blockTotal:    blockHeaderSize + required,
		blocksPerPage: blocksPerPage,
	}
}

// expand draws one new page from the system allocator and threads its
// free list, then adds it to the partial list.
func (p *sizeClassPool) expand() *page {
	mem := safeMake(p.blockTotal*p.blocksPerPage, "pool page")
	pg := &page{mem: mem}
	base := unsafe.Pointer(unsafe.SliceData(mem))

	for i := uintptr(0); i < p.blocksPerPage; i++ {
		blk := unsafe.Add(base, i*p.blockTotal)
		(*blockHeader)(blk).page = pg
		nextSlot := (*unsafe.Pointer)(unsafe.Add(blk, blockHeaderSize))
		if i+1 < p.blocksPerPage {
			*nextSlot = unsafe.Add(blk, p.blockTotal)
		} else {
			*nextSlot = nil
		}
	}
	pg.freeHead = base
	pushPage(&p.partial, pg)
	return pg
}

// alloc returns a zeroed payload pointer, drawing a new page if every
// existing page is full.
func (p *sizeClassPool) alloc() unsafe.Pointer {
	if p.partial == nil {
		p.expand()
	}
	pg := p.partial

	raw := pg.freeHead
	nextSlot := (*unsafe.Pointer)(unsafe.Add(raw, blockHeaderSize))
	pg.freeHead = *nextSlot
	pg.usedCount++

	if pg.freeHead == nil {
		unlinkPage(&p.partial, pg)
		pushPage(&p.full, pg)
	}

	payload := unsafe.Add(raw, blockHeaderSize)
	zero(payload, p.payloadSize)
	return payload
}

// free returns ptr (a pointer previously returned by alloc) to its
// owning page's free list, moving the page back to partial if it was
// full and releasing the page's backing array once it empties.
func (p *sizeClassPool) free(ptr unsafe.Pointer) {
	raw := unsafe.Add(ptr, -int(blockHeaderSize))
	pg := (*blockHeader)(raw).page

	if pg.freeHead == nil {
		unlinkPage(&p.full, pg)
		pushPage(&p.partial, pg)
	}

	nextSlot := (*unsafe.Pointer)(unsafe.Add(raw, blockHeaderSize))
	*nextSlot = pg.freeHead
	pg.freeHead = raw
	pg.usedCount--

	if pg.usedCount == 0 {
		unlinkPage(&p.partial, pg)
		pg.mem = nil // drop the only remaining reference; GC reclaims the arena
	}
}

func zero(ptr unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(ptr), n)
	clear(b)
}

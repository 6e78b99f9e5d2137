package stringpool

import (
	"bytes"
	"context"
	"unsafe"

	"github.com/hupe1980/datakit/internal/hash"
	"github.com/hupe1980/datakit/internal/mem"
)

// ID identifies an interned string. The zero ID is invalid.
type ID uint64

// InvalidID is never returned for an interned string.
const InvalidID ID = 0

type entry struct {
	data []byte
	fp   uint64
	refs uint64
}

// Pool interns byte strings.
//
// Invariants: entries[id].refs > 0 exactly for live IDs, every live ID
// appears once in the forward index under its fingerprint, and every freed
// ID appears once on the free list.
type Pool struct {
	index   map[uint64][]ID
	entries []entry
	free    []ID
	count   int
	opts    options
}

// New creates an empty pool.
func New(optFns ...Option) *Pool {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = opts.Logger.WithComponent("stringpool")
	p := &Pool{opts: opts}
	p.init()
	return p
}

func (p *Pool) init() {
	p.index = make(map[uint64][]ID)
	p.entries = make([]entry, 1, p.opts.initialCapacity)
}

// nextID is the ID the next mint will use.
func (p *Pool) nextID() ID {
	return ID(len(p.entries))
}

func (p *Pool) grow() {
	if len(p.entries) < cap(p.entries) {
		return
	}
	grown := make([]entry, len(p.entries), mem.NextSizeFrom(cap(p.entries), p.opts.initialCapacity))
	copy(grown, p.entries)
	p.entries = grown
}

// Intern stores b if absent and returns its ID, taking one reference.
// b is copied.
func (p *Pool) Intern(b []byte) ID {
	return p.intern(b, hash.Fingerprint(b))
}

// InternString is Intern for a string.
func (p *Pool) InternString(s string) ID {
	return p.intern(unsafe.Slice(unsafe.StringData(s), len(s)), hash.FingerprintString(s))
}

func (p *Pool) intern(b []byte, fp uint64) ID {
	if p.index == nil {
		p.init()
	}
	if id := p.find(b, fp); id != InvalidID {
		p.entries[id].refs++
		p.opts.Metrics.RecordIntern(true)
		return id
	}

	var id ID
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.grow()
		id = p.nextID()
		p.entries = append(p.entries, entry{})
	}

	data := make([]byte, len(b))
	copy(data, b)
	p.entries[id] = entry{data: data, fp: fp, refs: 1}
	p.index[fp] = append(p.index[fp], id)
	p.count++
	p.opts.Metrics.RecordIntern(false)
	return id
}

func (p *Pool) find(b []byte, fp uint64) ID {
	for _, id := range p.index[fp] {
		if bytes.Equal(p.entries[id].data, b) {
			return id
		}
	}
	return InvalidID
}

// GetID returns the ID of b, or InvalidID if b is not interned. No
// reference is taken.
func (p *Pool) GetID(b []byte) ID {
	return p.find(b, hash.Fingerprint(b))
}

// GetIDString is GetID for a string.
func (p *Pool) GetIDString(s string) ID {
	return p.find(unsafe.Slice(unsafe.StringData(s), len(s)), hash.FingerprintString(s))
}

// Exists reports whether b is interned.
func (p *Pool) Exists(b []byte) bool {
	return p.GetID(b) != InvalidID
}

func (p *Pool) live(id ID) (*entry, bool) {
	if id == InvalidID || id >= p.nextID() {
		return nil, false
	}
	e := &p.entries[id]
	if e.refs == 0 || e.data == nil {
		return nil, false
	}
	return e, true
}

// Lookup returns the bytes of id. The slice is owned by the pool and valid
// until the ID is released.
func (p *Pool) Lookup(id ID) ([]byte, bool) {
	e, ok := p.live(id)
	if !ok {
		return nil, false
	}
	return e.data, true
}

// LookupString returns the bytes of id as a new string.
func (p *Pool) LookupString(id ID) (string, bool) {
	b, ok := p.Lookup(id)
	return string(b), ok
}

// RefCount returns the number of references held on id.
func (p *Pool) RefCount(id ID) uint64 {
	e, ok := p.live(id)
	if !ok {
		return 0
	}
	return e.refs
}

// Retain takes another reference on a live id.
func (p *Pool) Retain(id ID) bool {
	e, ok := p.live(id)
	if !ok {
		return false
	}
	e.refs++
	return true
}

// Release drops one reference on id and reports whether the entry was
// freed by this call.
func (p *Pool) Release(id ID) bool {
	e, ok := p.live(id)
	if !ok {
		return false
	}
	e.refs--
	if e.refs > 0 {
		p.opts.Metrics.RecordRelease(false)
		return false
	}

	p.unindex(e.fp, id)
	*e = entry{}
	p.free = append(p.free, id)
	p.count--
	p.opts.Metrics.RecordRelease(true)
	p.opts.Logger.LogPoolRecycle(context.Background(), uint64(id))
	return true
}

func (p *Pool) unindex(fp uint64, id ID) {
	ids := p.index[fp]
	for i, v := range ids {
		if v != id {
			continue
		}
		ids[i] = ids[len(ids)-1]
		ids = ids[:len(ids)-1]
		break
	}
	if len(ids) == 0 {
		delete(p.index, fp)
		return
	}
	p.index[fp] = ids
}

// Count returns the number of live entries.
func (p *Pool) Count() int {
	return p.count
}

// Bytes returns the heap bytes owned by the pool, an estimate for the
// forward index included.
func (p *Pool) Bytes() int {
	total := int(unsafe.Sizeof(*p))
	total += cap(p.entries) * int(unsafe.Sizeof(entry{}))
	total += cap(p.free) * int(unsafe.Sizeof(ID(0)))
	for _, e := range p.entries {
		total += cap(e.data)
	}
	for _, ids := range p.index {
		total += int(unsafe.Sizeof(uint64(0))) + int(unsafe.Sizeof(ids)) + cap(ids)*int(unsafe.Sizeof(ID(0)))
	}
	return total
}

// Reset frees every entry. The next Intern returns ID 1.
func (p *Pool) Reset() {
	freed := p.count
	clear(p.index)
	clear(p.entries)
	p.entries = p.entries[:min(len(p.entries), 1)]
	p.free = p.free[:0]
	p.count = 0
	p.opts.Logger.LogPoolReset(context.Background(), freed)
}

// Free releases all storage. The pool may be reused afterwards.
func (p *Pool) Free() {
	if p == nil {
		return
	}
	p.Reset()
	p.index = nil
	p.entries = nil
	p.free = nil
}

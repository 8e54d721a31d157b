package engine

// Command is returned by ForEachManaged callbacks.
type Command int

const (
	Continue Command = iota
	Break
	DeleteAndContinue
	DeleteAndBreak
)

// PairCommand is returned by ForEachPair callbacks.
type PairCommand int

const (
	PairContinue PairCommand = iota
	PairDeleteFirst
	PairDeleteSecond
	PairDeleteBoth
	PairBreak
)

type slot[T any] struct {
	item *T
	gen  uint32
	// links are slot index + 1, 0 = none
	prev, next uint32
}

// List exclusively owns its entries. Entries are visited most-recent first.
// Insert and erase are O(1), and erasing during any iteration is safe: the
// entry stops resolving immediately and is unlinked once the outermost
// iteration returns. The zero List is ready to use.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	slots     []slot[T]
	free      []uint32
	head      uint32
	count     int
	iterating int
	pending   []uint32
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Create takes ownership of item, inserts it at the front and returns a handle to it.
func (l *List[T]) Create(item *T) Handle {
	if item == nil {
		panic("engine: Create with nil item")
	}

	var idx uint32
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[T]{gen: 1})
		idx = uint32(len(l.slots) - 1)
	}

	s := &l.slots[idx]
	s.item = item
	s.prev = 0
	s.next = l.head
	if l.head != 0 {
		l.slots[l.head-1].prev = idx + 1
	}
	l.head = idx + 1
	l.count++

	return Handle{index: idx, gen: s.gen}
}

// Get resolves h. It returns false if h is empty or its entry is gone.
func (l *List[T]) Get(h Handle) (*T, bool) {
	if !h.IsValid() || int(h.index) >= len(l.slots) {
		return nil, false
	}
	s := &l.slots[h.index]
	if s.gen != h.gen || s.item == nil {
		return nil, false
	}
	return s.item, true
}

// Alive reports whether h still resolves.
func (l *List[T]) Alive(h Handle) bool {
	_, ok := l.Get(h)
	return ok
}

// Find returns the handle of item if the list owns it.
func (l *List[T]) Find(item *T) (Handle, bool) {
	for i := l.head; i != 0; i = l.slots[i-1].next {
		if s := &l.slots[i-1]; s.item == item && item != nil {
			return Handle{index: i - 1, gen: s.gen}, true
		}
	}
	return Handle{}, false
}

// Release erases the entry h refers to. Releasing a stale handle is a no-op.
func (l *List[T]) Release(h Handle) bool {
	if !l.Alive(h) {
		return false
	}
	l.release(h.index)
	return true
}

// ReleaseAll erases every entry.
func (l *List[T]) ReleaseAll() {
	for i := l.head; i != 0; {
		next := l.slots[i-1].next
		l.release(i - 1)
		i = next
	}
}

// Len returns the number of live entries.
func (l *List[T]) Len() int {
	return l.count
}

// UpdateAll calls fn for every entry; entries for which fn returns false are erased.
func (l *List[T]) UpdateAll(fn func(*T) bool) {
	l.begin()
	defer l.end()

	for i := l.head; i != 0; i = l.slots[i-1].next {
		item := l.slots[i-1].item
		if item == nil {
			continue
		}
		if !fn(item) {
			l.release(i - 1)
		}
	}
}

// ForEach visits every live entry. The pointer is only guaranteed for the
// duration of the call.
func (l *List[T]) ForEach(fn func(Handle, *T)) {
	l.begin()
	defer l.end()

	for i := l.head; i != 0; i = l.slots[i-1].next {
		s := l.slots[i-1]
		if s.item == nil {
			continue
		}
		fn(Handle{index: i - 1, gen: s.gen}, s.item)
	}
}

// ForEachManaged visits every live entry and lets fn delete the visited entry
// or stop the iteration.
func (l *List[T]) ForEachManaged(fn func(Handle, *T) Command) {
	l.begin()
	defer l.end()

	for i := l.head; i != 0; i = l.slots[i-1].next {
		s := l.slots[i-1]
		if s.item == nil {
			continue
		}
		switch fn(Handle{index: i - 1, gen: s.gen}, s.item) {
		case Break:
			return
		case DeleteAndContinue:
			l.release(i - 1)
		case DeleteAndBreak:
			l.release(i - 1)
			return
		}
	}
}

// ForEachPair visits every unordered pair of live entries exactly once.
// Deleting the first entry of a pair, or releasing it from inside fn, moves
// on to the next first entry. Entries released inside fn are never visited
// again.
func (l *List[T]) ForEachPair(fn func(ha Handle, a *T, hb Handle, b *T) PairCommand) {
	l.begin()
	defer l.end()

outer:
	for i := l.head; i != 0; i = l.slots[i-1].next {
		a := l.slots[i-1].item
		if a == nil {
			continue
		}
		ha := Handle{index: i - 1, gen: l.slots[i-1].gen}
		for j := l.slots[i-1].next; j != 0; j = l.slots[j-1].next {
			b := l.slots[j-1].item
			if b == nil {
				continue
			}
			switch fn(ha, a, Handle{index: j - 1, gen: l.slots[j-1].gen}, b) {
			case PairDeleteFirst:
				l.release(i - 1)
				continue outer
			case PairDeleteSecond:
				l.release(j - 1)
			case PairDeleteBoth:
				l.release(j - 1)
				l.release(i - 1)
				continue outer
			case PairBreak:
				return
			}
			if l.slots[i-1].item == nil {
				continue outer
			}
		}
	}
}

func (l *List[T]) begin() {
	l.iterating++
}

func (l *List[T]) end() {
	l.iterating--
	if l.iterating > 0 {
		return
	}
	for _, idx := range l.pending {
		l.unlink(idx)
		l.free = append(l.free, idx)
	}
	l.pending = l.pending[:0]
}

func (l *List[T]) release(idx uint32) {
	s := &l.slots[idx]
	if s.item == nil {
		return
	}
	s.item = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	l.count--

	if l.iterating > 0 {
		l.pending = append(l.pending, idx)
		return
	}
	l.unlink(idx)
	l.free = append(l.free, idx)
}

func (l *List[T]) unlink(idx uint32) {
	s := &l.slots[idx]
	if s.prev != 0 {
		l.slots[s.prev-1].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != 0 {
		l.slots[s.next-1].prev = s.prev
	}
	s.prev, s.next = 0, 0
}

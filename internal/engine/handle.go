package engine

import "fmt"

// Handle is a non-owning reference to an entry of a List.
// The zero Handle refers to nothing. A Handle never keeps its entry alive:
// resolve it through the owning list before every use.
//
// Example:
//
//	type Missile struct {
//	    Target engine.Handle
//	}
//
//	if ship, ok := ships.Get(m.Target); ok {
//	    // ship is alive for the rest of this call
//	}
type Handle struct {
	index uint32
	gen   uint32 // 0 = empty handle
}

// IsValid reports whether the handle points at something.
// It does not check that the entry still exists; use List.Alive for that.
func (h Handle) IsValid() bool {
	return h.gen != 0
}

// Clear empties the handle.
func (h *Handle) Clear() {
	*h = Handle{}
}

func (h Handle) String() string {
	if !h.IsValid() {
		return "none"
	}
	return fmt.Sprintf("%d#%d", h.index, h.gen)
}

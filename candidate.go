package main

// Candidate is an ordered list of shapes. Index 0 is the head: the most
// recently inserted shape, and the first one composited by Render.
type Candidate []Shape

// Clone returns an independent copy. Population slots and the best-ever
// record never share a backing array.
func (c Candidate) Clone() Candidate {
	if c == nil {
		return Candidate{}
	}
	out := make(Candidate, len(c))
	copy(out, c)
	return out
}

// Equal reports structural equality.
func (c Candidate) Equal(o Candidate) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// pushFront inserts s at the head. c must be owned by the caller.
func (c Candidate) pushFront(s Shape) Candidate {
	c = append(c, Shape{})
	copy(c[1:], c[:len(c)-1])
	c[0] = s
	return c
}

// removeAt drops the shape at index i, keeping the order of the rest.
// c must be owned by the caller.
func (c Candidate) removeAt(i int) Candidate {
	return append(c[:i], c[i+1:]...)
}

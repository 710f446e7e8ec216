// SPDX-License-Identifier: EPL-2.0

package decompose

// segment is a half-open index range [start, start+length) of the buffers
// owned by a run.
type segment struct {
	start  int
	length int
}

func (s segment) end() int { return s.start + s.length }

// halves splits s at length/2. The right half starts where the left one
// ends, so the two never overlap and together cover s.
func (s segment) halves() (segment, segment) {
	h := s.length / 2
	return segment{start: s.start, length: h},
		segment{start: s.start + h, length: s.length - h}
}

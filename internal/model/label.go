package model

import "strings"

// Labels is an ordered set of task labels.
// Membership ignores order; display keeps insertion order.
type Labels []string

// NewLabels builds a label set, dropping blanks and duplicates
func NewLabels(names ...string) Labels {
	var l Labels
	for _, n := range names {
		l = l.Add(n)
	}
	return l
}

// Has returns true if the label is present
func (l Labels) Has(name string) bool {
	for _, existing := range l {
		if existing == name {
			return true
		}
	}
	return false
}

// Add returns a new set with the label appended unless it is blank or already present
func (l Labels) Add(name string) Labels {
	name = strings.TrimSpace(name)
	if name == "" || l.Has(name) {
		return l.Clone()
	}
	out := make(Labels, len(l), len(l)+1)
	copy(out, l)
	return append(out, name)
}

// Remove returns a new set without the label
func (l Labels) Remove(name string) Labels {
	out := make(Labels, 0, len(l))
	for _, existing := range l {
		if existing != name {
			out = append(out, existing)
		}
	}
	return out
}

// Clone returns a copy that shares no backing array with l
func (l Labels) Clone() Labels {
	if l == nil {
		return nil
	}
	out := make(Labels, len(l))
	copy(out, l)
	return out
}

// String joins the labels for display
func (l Labels) String() string {
	return strings.Join(l, ", ")
}

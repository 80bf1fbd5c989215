// Package equation is the checker's view of the equation subsystem:
// a read-only set of currently defined equation variable names.
package equation

// Set is an ordered collection of equation variable names.
type Set struct {
	names []string
	index map[string]bool
}

func NewSet(names ...string) *Set {
	s := &Set{index: make(map[string]bool)}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func (s *Set) Add(name string) {
	if s.index[name] {
		return
	}
	s.index[name] = true
	s.names = append(s.names, name)
}

func (s *Set) Contains(name string) bool {
	return s != nil && s.index[name]
}

// Names returns the variable names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

package model

// History is the complete persisted record.
// Year ids are expected to be unique, but AddYear does not enforce it.
type History struct {
	Years []*Year `yaml:"years"`
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{Years: []*Year{}}
}

// AddYear appends y unconditionally.
func (h *History) AddYear(y *Year) {
	h.Years = append(h.Years, y)
}

// Equal compares the years of both histories in order.
func (h *History) Equal(o *History) bool {
	if h == nil || o == nil {
		return h == o
	}
	if len(h.Years) != len(o.Years) {
		return false
	}
	for i := range h.Years {
		if !h.Years[i].Equal(o.Years[i]) {
			return false
		}
	}
	return true
}

package model

import "strconv"

// Year groups the months recorded for one calendar year.
// Month names are expected to be unique, but AddMonth does not enforce it.
type Year struct {
	ID     uint16  `yaml:"id"`
	Months []Month `yaml:"months"`
}

// NewYear returns an empty Year.
func NewYear(id uint16) *Year {
	return &Year{ID: id, Months: []Month{}}
}

// AddMonth appends m unconditionally.
func (y *Year) AddMonth(m Month) {
	y.Months = append(y.Months, m)
}

// Equal compares ids and months in order.
func (y *Year) Equal(o *Year) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.ID != o.ID || len(y.Months) != len(o.Months) {
		return false
	}
	for i := range y.Months {
		if !y.Months[i].Equal(o.Months[i]) {
			return false
		}
	}
	return true
}

func (y *Year) String() string {
	return strconv.FormatUint(uint64(y.ID), 10)
}

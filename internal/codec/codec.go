// Package codec converts records to and from the YAML text stored in the data file.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"fii/internal/model"
)

// ErrCorrupted is returned when text does not follow the record schema.
var ErrCorrupted = errors.New("data file has been corrupted")

// Record is any value of the record tree the codec can round-trip.
type Record interface {
	model.Month | model.Year | model.History
}

// Encode renders v as YAML. Years and months keep their in-memory order.
func Encode[T Record](v *T) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(v)); err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return buf.String(), nil
}

// Decode parses text produced by Encode, or hand-edited text following the same schema.
// Unknown keys, mistyped or out-of-range values, extra documents and empty input
// all yield ErrCorrupted.
func Decode[T Record](text string) (*T, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrCorrupted)
	}
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	v := new(T)
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: more than one document", ErrCorrupted)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if err := check(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	return v, nil
}

// normalize swaps nil slices for empty ones so they encode as [] rather than null.
func normalize[T Record](v *T) any {
	switch r := any(v).(type) {
	case *model.Year:
		return normalizeYear(r)
	case *model.History:
		h := &model.History{Years: make([]*model.Year, 0, len(r.Years))}
		for _, y := range r.Years {
			h.Years = append(h.Years, normalizeYear(y))
		}
		return h
	}
	return v
}

func normalizeYear(y *model.Year) *model.Year {
	if y == nil || y.Months != nil {
		return y
	}
	return &model.Year{ID: y.ID, Months: []model.Month{}}
}

func check[T Record](v *T) error {
	h, ok := any(v).(*model.History)
	if !ok {
		return nil
	}
	for i, y := range h.Years {
		if y == nil {
			return fmt.Errorf("years[%d] is null", i)
		}
	}
	return nil
}

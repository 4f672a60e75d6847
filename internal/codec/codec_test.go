package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fii/internal/model"
)

func sampleHistory() *model.History {
	h := model.NewHistory()
	y2018 := model.NewYear(2018)
	y2018.AddMonth(model.NewMonth("jan", 12345, 6789, 1234567))
	y2018.AddMonth(model.NewMonth("feb", 20000, 7000, 1300000))
	y2017 := model.NewYear(2017)
	y2017.AddMonth(model.NewMonth("dec", 1, 0, 4294967295))
	h.AddYear(y2018)
	h.AddYear(y2017)
	return h
}

func TestRoundTrip_Month(t *testing.T) {
	m := model.NewMonth("january", 12345, 6789, 1234567)
	text, err := Encode(&m)
	require.NoError(t, err)

	got, err := Decode[model.Month](text)
	require.NoError(t, err)
	assert.True(t, m.Equal(*got), "got %+v", *got)
}

func TestRoundTrip_Year(t *testing.T) {
	for _, y := range []*model.Year{model.NewYear(2018), {ID: 2019}, sampleHistory().Years[0]} {
		text, err := Encode(y)
		require.NoError(t, err)

		got, err := Decode[model.Year](text)
		require.NoError(t, err)
		assert.True(t, y.Equal(got), "year %d did not round-trip:\n%s", y.ID, text)
	}
}

func TestRoundTrip_History(t *testing.T) {
	tests := []struct {
		name string
		h    *model.History
	}{
		{"empty", model.NewHistory()},
		{"nil years", &model.History{}},
		{"populated", sampleHistory()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Encode(tt.h)
			require.NoError(t, err)

			got, err := Decode[model.History](text)
			require.NoError(t, err)
			assert.True(t, tt.h.Equal(got), "history did not round-trip:\n%s", text)
		})
	}
}

func TestEncode_Schema(t *testing.T) {
	text, err := Encode(sampleHistory())
	require.NoError(t, err)

	for _, key := range []string{"years:", "id: 2018", "months:", "name: jan", "income: 12345", "expenses: 6789", "investments: 1234567"} {
		assert.Contains(t, text, key)
	}
	assert.Less(t, strings.Index(text, "id: 2018"), strings.Index(text, "id: 2017"), "year order must be preserved")
	assert.Less(t, strings.Index(text, "name: jan"), strings.Index(text, "name: feb"), "month order must be preserved")
}

func TestEncode_EmptyHistory(t *testing.T) {
	text, err := Encode(&model.History{})
	require.NoError(t, err)
	assert.Equal(t, "years: []\n", text)
}

func TestDecode_HandEdited(t *testing.T) {
	text := `
years:
  - id: 2020
    months:
      - {name: mar, income: 10, expenses: 5, investments: 100}
`
	got, err := Decode[model.History](text)
	require.NoError(t, err)
	require.Len(t, got.Years, 1)
	assert.Equal(t, uint16(2020), got.Years[0].ID)
	assert.Equal(t, model.NewMonth("mar", 10, 5, 100), got.Years[0].Months[0])
}

func TestDecode_Corrupted(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t"},
		{"scalar document", "hello"},
		{"broken syntax", "years: [\n  - id: 1"},
		{"unknown key", "years: []\nversion: 2\n"},
		{"negative income", "years:\n  - id: 2018\n    months:\n      - {name: jan, income: -1, expenses: 0, investments: 0}\n"},
		{"expenses overflow", "years:\n  - id: 2018\n    months:\n      - {name: jan, income: 1, expenses: 70000, investments: 0}\n"},
		{"year id overflow", "years:\n  - id: 70000\n    months: []\n"},
		{"string investments", "years:\n  - id: 2018\n    months:\n      - {name: jan, income: 1, expenses: 1, investments: lots}\n"},
		{"null year", "years:\n  - null\n"},
		{"broken second document", "years: []\n---\ngarbage: [\n"},
		{"second document", "years: []\n---\nyears: []\n"},
		{"truncated write", "years:\n  - id: 2018\n    months:\n      - {name: jan, inc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[model.History](tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupted)
		})
	}
}

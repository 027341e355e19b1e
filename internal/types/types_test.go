package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		code        string
		description string
	}{
		{"code and name", "ABC123 - Widget", "ABC123", "Widget"},
		{"no separator", "ABC123", "ABC123", ""},
		{"separator in name", "A - B - C", "A", "B - C"},
		{"empty label", "", "", ""},
		{"hyphen without spaces is not a separator", "AB-12", "AB-12", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, description := SplitLabel(tc.label)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.description, description)
		})
	}
}

func TestPartLabelRoundTrip(t *testing.T) {
	p := Part{Code: "ABC123", Name: "Widget"}
	assert.Equal(t, "ABC123 - Widget", p.Label())

	code, description := SplitLabel(p.Label())
	assert.Equal(t, p.Code, code)
	assert.Equal(t, p.Name, description)
}

func TestPartLabelWithoutName(t *testing.T) {
	p := Part{Code: "ABC123"}
	assert.Equal(t, "ABC123", p.Label())
}

func TestDraftRowValid(t *testing.T) {
	assert.True(t, DraftRow{PartLabel: "A - B", Quantity: 1}.Valid())

	// Quantity zero or empty selection must never qualify for persistence.
	assert.False(t, DraftRow{PartLabel: "A - B", Quantity: 0}.Valid())
	assert.False(t, DraftRow{PartLabel: "", Quantity: 5}.Valid())
	assert.False(t, DraftRow{PartLabel: "A - B", Quantity: -1}.Valid())
}

func TestDraftRowBlank(t *testing.T) {
	assert.True(t, DraftRow{Quantity: 1, FromLocation: "A", ToLocation: "B"}.Blank())
	assert.False(t, DraftRow{PartLabel: "A - B"}.Blank())
}

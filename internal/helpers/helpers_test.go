package helpers_test

import (
	"testing"

	"github.com/jroosing/mailreply/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name       string
		v          int
		lowerLimit int
		upperLimit int
		want       int
	}{
		{name: "below", v: 0, lowerLimit: 10, upperLimit: 20, want: 10},
		{name: "inside", v: 15, lowerLimit: 10, upperLimit: 20, want: 15},
		{name: "above", v: 25, lowerLimit: 10, upperLimit: 20, want: 20},
		{name: "at-lower", v: 10, lowerLimit: 10, upperLimit: 20, want: 10},
		{name: "at-upper", v: 20, lowerLimit: 10, upperLimit: 20, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ClampInt(tt.v, tt.lowerLimit, tt.upperLimit))
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "blank", raw: "", want: 50},
		{name: "spaces", raw: "  ", want: 50},
		{name: "garbage", raw: "ten", want: 50},
		{name: "valid", raw: "7", want: 7},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-3", want: 1},
		{name: "too-large", raw: "9999", want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.ParseLimit(tt.raw, 50, 500))
		})
	}
}

func TestNilIfBlank(t *testing.T) {
	assert.Nil(t, helpers.NilIfBlank(""))
	assert.Nil(t, helpers.NilIfBlank(" \t\n"))

	got := helpers.NilIfBlank("john@example.com")
	require.NotNil(t, got)
	assert.Equal(t, "john@example.com", *got)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", helpers.Deref(nil))
	s := "notes"
	assert.Equal(t, "notes", helpers.Deref(&s))
}

package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyTransformStrings(t *testing.T) {
	tests := []struct {
		name string
		op   string
		in   any
		want any
	}{
		{"uppercase", "uppercase", "hello", "HELLO"},
		{"lowercase", "lowercase", "HeLLo", "hello"},
		{"trim", "trim", "  padded  ", "padded"},
		{"strip_tags", "strip_tags", "<p>Some <b>bold</b> text</p>", "Some bold text"},
		{"excerpt passes short text", "excerpt", "only four words here", "only four words here"},
		{"string op passes non-string", "uppercase", 42, 42},
		{"nil passes through", "trim", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyTransform(tt.op, tt.in))
		})
	}
}

func TestApplyTransformExcerptTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}
	got := applyTransform("excerpt", long)
	s, ok := got.(string)
	assert.True(t, ok)
	assert.Contains(t, s, "…")
}

func TestApplyTransformCoercions(t *testing.T) {
	tests := []struct {
		name string
		op   string
		in   any
		want any
	}{
		{"int from string", "int", "42", int64(42)},
		{"int from float string", "int", "42.9", int64(42)},
		{"int from float", "int", 42.9, int64(42)},
		{"int from bool", "int", true, int64(1)},
		{"int from garbage", "int", "many", nil},
		{"float from string", "float", "19.99", 19.99},
		{"float from int", "float", 7, 7.0},
		{"float from garbage", "float", "cheap", nil},
		{"bool true words", "bool", "yes", true},
		{"bool false words", "bool", "off", false},
		{"bool from number", "bool", 0, false},
		{"bool from garbage", "bool", "maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyTransform(tt.op, tt.in))
		})
	}
}

func TestApplyTransformDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"rfc3339", "2024-03-01T09:00:00Z", "2024-03-01T09:00:00Z"},
		{"mysql datetime", "2024-03-01 09:00:00", "2024-03-01T09:00:00Z"},
		{"date only", "2024-03-01", "2024-03-01T00:00:00Z"},
		{"german format", "01.03.2024", "2024-03-01T00:00:00Z"},
		{"time value", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), "2024-03-01T09:00:00Z"},
		{"garbage", "soonish", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyTransform("date", tt.in))
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "a, b", stringify([]any{"a", "b"}))
	assert.Equal(t, "a, b", stringify([]string{"a", "b"}))
	assert.Equal(t, "19.99", stringify(19.99))
	assert.Equal(t, "1", stringify(true))
	assert.Equal(t, "0", stringify(false))
	assert.Equal(t, "42", stringify(42))
}

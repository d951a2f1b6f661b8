package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBulkText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNames   []string
		wantDropped int
	}{
		{"newlines", "Alice\nBob\nCarol", []string{"Alice", "Bob", "Carol"}, 0},
		{"commas and newlines", "Alice, Bob\nCarol,Dave", []string{"Alice", "Bob", "Carol", "Dave"}, 0},
		{"crlf", "Alice\r\nBob\r\n", []string{"Alice", "Bob"}, 0},
		{"blank records", "Alice\n  \n, ,Bob", []string{"Alice", "Bob"}, 2},
		{"repeated separators", "Alice,,\n\nBob", []string{"Alice", "Bob"}, 0},
		{"empty records between commas", "A,,B", []string{"A", "B"}, 0},
		{"only whitespace records count", "A, ,,\t,B", []string{"A", "B"}, 2},
		{"empty", "", []string{}, 0},
		{"inner spaces kept", "  Mary Jane  ", []string{"Mary Jane"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := ParseBulkText(tt.input)
			assert.Equal(t, tt.wantNames, got)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestParseFileText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantNames   []string
		wantDropped int
	}{
		{"one per line", "Alice\nBob", []string{"Alice", "Bob"}, 0},
		{"first csv column", "Alice,HR,1001\r\nBob,IT,1002\r\n", []string{"Alice", "Bob"}, 0},
		{"bom", "\uFEFFAlice\nBob", []string{"Alice", "Bob"}, 0},
		{"blank first column", ",HR\nBob", []string{"Bob"}, 1},
		{"whitespace line", "Alice\n   \nBob", []string{"Alice", "Bob"}, 1},
		{"mac line breaks", "Alice\rBob", []string{"Alice", "Bob"}, 0},
		{"ragged rows", "Alice\nBob,IT,1002,extra\nCarol,HR", []string{"Alice", "Bob", "Carol"}, 0},
		{"quotes are not csv quoting", "\"Doe, Jane\",IT\nBob", []string{"\"Doe", "Bob"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := ParseFileText(tt.input)
			assert.Equal(t, tt.wantNames, got)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestDemoRoster(t *testing.T) {
	assert.Len(t, DemoRoster, 30)
}

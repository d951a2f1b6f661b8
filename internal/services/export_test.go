package services

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrtoolbox/internal/models"
)

func sampleGroups() []models.Group {
	return []models.Group{
		{
			ID:    "g-1",
			Name:  "Rockets",
			Motto: `Aim "high"`,
			Members: []models.Participant{
				{ID: "p-1", Name: "Alice"},
				{ID: "p-2", Name: "Bob, Jr."},
			},
		},
		{
			ID:      "g-2",
			Name:    "Group 2",
			Members: []models.Participant{{ID: "p-3", Name: "Carol"}},
		},
	}
}

func TestWriteGroupsCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteGroupsCSV(&buf, sampleGroups()))

	want := "\uFEFF" +
		`"Group Name","Motto","Member Name"` + "\n" +
		`"Rockets","Aim ""high""","Alice"` + "\n" +
		`"Rockets","Aim ""high""","Bob, Jr."` + "\n" +
		`"Group 2","","Carol"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGroupsCSV_NoGroups(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteGroupsCSV(&buf, nil))

	assert.Equal(t, "\uFEFF"+`"Group Name","Motto","Member Name"`+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteGroupsCSV_WriteError(t *testing.T) {
	err := WriteGroupsCSV(failingWriter{}, sampleGroups())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCSVFilename(t *testing.T) {
	at := time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "groups_2026-10-17.csv", CSVFilename(at))
}

func TestClipboardText(t *testing.T) {
	want := "Rockets (Aim \"high\")\nMembers: Alice, Bob, Jr.\n\nGroup 2\nMembers: Carol"
	assert.Equal(t, want, ClipboardText(sampleGroups()))
	assert.Equal(t, "", ClipboardText(nil))
}

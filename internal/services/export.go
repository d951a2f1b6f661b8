package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"hrtoolbox/internal/models"
)

var csvHeader = []string{"Group Name", "Motto", "Member Name"}

// WriteGroupsCSV writes one row per group member, preceded by a UTF-8 BOM
// so spreadsheet tools detect the encoding. Every field is quoted.
func WriteGroupsCSV(w io.Writer, groups []models.Group) error {
	var b strings.Builder
	b.WriteString(byteOrderMark)
	writeQuotedRow(&b, csvHeader)
	for _, g := range groups {
		for _, m := range g.Members {
			writeQuotedRow(&b, []string{g.Name, g.Motto, m.Name})
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write groups csv: %w", err)
	}
	return nil
}

func writeQuotedRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// CSVFilename returns the download name for a groups export made at t.
func CSVFilename(t time.Time) string {
	return "groups_" + t.Format(time.DateOnly) + ".csv"
}

// ClipboardText renders groups as plain text blocks separated by a blank line.
func ClipboardText(groups []models.Group) string {
	blocks := make([]string, len(groups))
	for i, g := range groups {
		title := g.Name
		if g.Motto != "" {
			title += " (" + g.Motto + ")"
		}
		blocks[i] = title + "\nMembers: " + strings.Join(g.MemberNames(), ", ")
	}
	return strings.Join(blocks, "\n\n")
}

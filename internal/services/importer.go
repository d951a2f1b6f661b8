package services

import (
	"strings"

	"hrtoolbox/internal/models"
)

// ImportResult describes the outcome of a text or file import.
type ImportResult struct {
	Added []models.Participant
	// Dropped counts whitespace-only records. Runs of separators are
	// collapsed, so "A,,B" yields no dropped records.
	Dropped int
}

const byteOrderMark = "\uFEFF"

// ParseBulkText splits pasted text on runs of newlines and commas.
// It returns the trimmed non-blank names and the number of
// whitespace-only records.
func ParseBulkText(text string) ([]string, int) {
	records := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})
	return keepNonBlank(records)
}

// ParseFileText splits uploaded file content on line breaks and keeps the
// first comma-separated column of every line.
func ParseFileText(text string) ([]string, int) {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	records := make([]string, len(lines))
	for i, line := range lines {
		first, _, _ := strings.Cut(line, ",")
		records[i] = first
	}
	return keepNonBlank(records)
}

func keepNonBlank(records []string) ([]string, int) {
	names := make([]string, 0, len(records))
	dropped := 0
	for _, rec := range records {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			dropped++
			continue
		}
		names = append(names, rec)
	}
	return names, dropped
}

// DemoRoster is the sample roster offered to first-time users.
var DemoRoster = []string{
	"孫悟空", "貝吉塔", "魯夫", "索隆", "娜美", "鳴人", "佐助", "小櫻",
	"炭治郎", "禰豆子", "善逸", "伊之助", "虎杖", "伏黑", "釘崎", "五條悟",
	"安妮亞", "黃昏", "約兒", "彭德", "艾連", "米卡莎", "阿爾敏", "里維",
	"芙莉蓮", "費倫", "修塔爾克", "欣梅爾", "埼玉", "傑諾斯",
}

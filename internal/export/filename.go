package export

import (
	"mime"
	"strings"
	"unicode"
)

const maxFilenameRunes = 100

// SanitizeFilename makes a title safe to use as a download file name.
func SanitizeFilename(title string) string {
	var b strings.Builder
	count := 0
	for _, r := range title {
		if count == maxFilenameRunes {
			break
		}
		if unicode.IsControl(r) || strings.ContainsRune(`"'/\;:*?<>|`, r) {
			continue
		}
		b.WriteRune(r)
		count++
	}
	name := strings.TrimSpace(b.String())
	name = strings.Trim(name, ".")
	if name == "" {
		return "portfolio"
	}
	return name
}

// ContentDisposition formats an attachment header value. Non-ASCII names are
// emitted in the RFC 2231 extended form.
func ContentDisposition(filename string) string {
	value := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if value == "" {
		return `attachment; filename="portfolio.pdf"`
	}
	return value
}

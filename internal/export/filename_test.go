package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Install consumer unit":     "Install consumer unit",
		`a"b;c/d\e`:                 "abcde",
		"line\r\nbreak":             "linebreak",
		"   ":                       "portfolio",
		"../..":                     "portfolio",
		"Évaluation":                "Évaluation",
		strings.Repeat("x", 150):    strings.Repeat("x", 100),
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename=report.pdf", ContentDisposition("report.pdf"))
	assert.Equal(t, `attachment; filename="my report.pdf"`, ContentDisposition("my report.pdf"))
	assert.Contains(t, ContentDisposition("Évaluation.pdf"), "filename*=utf-8''")
}

package acquisition

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// extractLocalText extracts plain text from a PDF or DOCX without any network
// dependency. It is the last content-preserving fallback before the
// diagnostic string.
func extractLocalText(ext string, data []byte) (string, error) {
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		return "", errors.New("no local extractor for " + ext)
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return normalizeWhitespace(body), nil
}

func normalizeWhitespace(s string) string {
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

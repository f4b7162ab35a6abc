package acquisition

import (
	"path/filepath"
	"strings"
)

// mimeTypeFor selects the MIME type sent with the document blob from the
// file extension. Unknown extensions default to PDF, the dominant CV format.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/pdf"
	}
}

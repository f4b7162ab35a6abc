// Package acquisition turns a stored CV document into raw text. Every failure
// mode degrades to returning some string: a mock block when no AI credential
// is configured, a raw or locally extracted fallback when the model call
// fails, and a human-readable diagnostic as the last resort. Downstream steps
// only operate on strings, so an error here is still expressed as text.
package acquisition

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/heuristic"
	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/prompts"
	"github.com/jonathan/cv-analyzer/internal/storage"
)

// ExtractText returns the textual content of the document at path. It never
// returns an error; see the package comment for the degradation chain.
// A nil client means no AI credential is configured and yields the mock block.
func ExtractText(ctx context.Context, store storage.Client, path string, client llm.Client) string {
	data, err := store.Download(path)
	if err != nil {
		return fmt.Sprintf("Unable to download CV file %q: %v. Please verify the file exists and try again.", path, err)
	}

	if client == nil {
		return heuristic.MockCVText
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType := mimeTypeFor(path)
	prompt := prompts.MustGet("cv.json", "extract-text")

	text, err := client.GenerateFromDocument(ctx, prompt, mimeType, data, llm.TierAdvanced)
	if err == nil {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}

	// The model path failed; salvage what we can locally.
	if ext == ".txt" {
		if raw, rerr := store.Download(path); rerr == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	if local, lerr := extractLocalText(ext, data); lerr == nil && strings.TrimSpace(local) != "" {
		return local
	}

	return fmt.Sprintf("Could not extract text from CV file %q (%s): the document reader did not return any content.", path, mimeType)
}

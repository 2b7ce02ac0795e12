package util

import (
	"fmt"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractPDFText pulls the plain text out of a PDF so CVs and interview
// transcripts can be fed to the evaluation prompts.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			log.Println(lastErr)
			continue
		}

		pageText = strings.TrimSpace(pageText)
		if len(pageText) > 0 {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())

	if len(result) == 0 {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text: %w", lastErr)
		}
		return "", fmt.Errorf("no text extracted from PDF (PDF might be empty or scanned images)")
	} else if len(result) < 100 {
		return "", fmt.Errorf("content too short for meaningful evaluation")
	}

	return result, nil
}

package speech

import (
	"context"
	"strings"
)

//go:generate mockery --name=Synthesizer --dir=. --output=./mocks --filename=synthesizer_mock.go --case=underscore --with-expecter
type Synthesizer interface {
	Name() string
	// Available reports whether the engine can run on this host.
	Available(ctx context.Context) error
	// Synthesize writes a WAV rendition of text to outPath.
	Synthesize(ctx context.Context, text, outPath string) error
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// PrepareText caps text at maxChars runes and flattens line breaks to spaces.
func PrepareText(text string, maxChars int) string {
	if maxChars > 0 {
		runes := []rune(text)
		if len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
	}
	return lineBreaks.Replace(text)
}

// Package translate defines the translator capability: converting text
// between languages identified by BCP 47 tags.
package translate

import (
	"context"
	"errors"

	"golang.org/x/text/language"
)

// ErrUnavailable is returned by translators that have no backing
// translation source configured.
var ErrUnavailable = errors.New("translate: no translation source available")

// Translator converts text between languages.
type Translator interface {
	// Translate converts text from the source to the target language.
	Translate(ctx context.Context, text string, from, to language.Tag) (string, error)

	// Available reports whether this translator can actually translate.
	Available() bool
}

// Default is the built-in translator. It is a placeholder: it reports
// itself unavailable and refuses to translate, so that a configuration
// without a translator still yields a complete, safe object graph.
type Default struct{}

// Translate implements Translator.
func (Default) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	return "", ErrUnavailable
}

// Available implements Translator.
func (Default) Available() bool { return false }

package translate

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Dictionary is a word-for-word translator backed by an in-memory
// table per language pair. Words without an entry pass through
// unchanged. It is mainly useful for tests and demos, but it is a
// registrable service like any other translator.
type Dictionary struct {
	words map[pair]map[string]string
}

type pair struct{ from, to string }

// NewDictionary returns an empty dictionary translator.
func NewDictionary() *Dictionary {
	return &Dictionary{words: make(map[pair]map[string]string)}
}

// Add records a translation for one word between two languages.
func (d *Dictionary) Add(from, to language.Tag, word, translation string) {
	key := pair{from.String(), to.String()}
	if d.words[key] == nil {
		d.words[key] = make(map[string]string)
	}
	d.words[key][word] = translation
}

// Available implements Translator.
func (d *Dictionary) Available() bool {
	return len(d.words) > 0
}

// Translate implements Translator.
func (d *Dictionary) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	table := d.words[pair{from.String(), to.String()}]
	if table == nil {
		return "", ErrUnavailable
	}
	words := strings.Fields(text)
	for i, w := range words {
		if tr, ok := table[w]; ok {
			words[i] = tr
		}
	}
	return strings.Join(words, " "), nil
}

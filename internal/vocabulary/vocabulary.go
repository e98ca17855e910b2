package vocabulary

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a single sign vocabulary record. Entries are immutable once a
// Set is built.
type Entry struct {
	Word          string            `json:"word" yaml:"word"`
	Category      string            `json:"category" yaml:"category"`
	Synonyms      []string          `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Description   string            `json:"description" yaml:"description"`
	AnimationType string            `json:"animation_type,omitempty" yaml:"animation_type,omitempty"`
	AnimationData map[string]string `json:"animation_data,omitempty" yaml:"animation_data,omitempty"`
}

// Set indexes vocabulary entries for case-insensitive lookup by canonical
// word, by synonym, and by multi-word phrase.
type Set struct {
	entries  map[string]Entry
	synonyms map[string]string
	phrases  []string
}

// NewSet builds a Set from entries. Later entries replace earlier ones with
// the same canonical word, which lets a user file override the builtin
// catalog.
func NewSet(entries []Entry) *Set {
	s := &Set{
		entries:  make(map[string]Entry, len(entries)),
		synonyms: make(map[string]string),
	}
	for _, e := range entries {
		word := strings.ToLower(strings.TrimSpace(e.Word))
		if word == "" {
			continue
		}
		e.Word = word
		s.entries[word] = e
	}
	for word, e := range s.entries {
		if strings.Contains(word, " ") {
			s.phrases = append(s.phrases, word)
		}
		for _, syn := range e.Synonyms {
			syn = strings.ToLower(strings.TrimSpace(syn))
			if syn == "" || syn == word {
				continue
			}
			if _, taken := s.entries[syn]; taken {
				continue
			}
			if _, taken := s.synonyms[syn]; taken {
				continue
			}
			s.synonyms[syn] = word
		}
	}
	// Longest phrases first so greedy phrase matching prefers the most
	// specific span.
	sort.Slice(s.phrases, func(i, j int) bool {
		wi := strings.Count(s.phrases[i], " ")
		wj := strings.Count(s.phrases[j], " ")
		if wi != wj {
			return wi > wj
		}
		if len(s.phrases[i]) != len(s.phrases[j]) {
			return len(s.phrases[i]) > len(s.phrases[j])
		}
		return s.phrases[i] < s.phrases[j]
	})
	return s
}

// Load reads additional entries from a YAML file. The file holds a plain
// list of entries.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	return entries, nil
}

// Lookup returns the entry for a canonical word, case-insensitively.
func (s *Set) Lookup(word string) (Entry, bool) {
	e, ok := s.entries[strings.ToLower(strings.TrimSpace(word))]
	return e, ok
}

// LookupSynonym resolves a synonym to its canonical entry.
func (s *Set) LookupSynonym(word string) (Entry, bool) {
	canonical, ok := s.synonyms[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return Entry{}, false
	}
	return s.entries[canonical], true
}

// Phrases returns multi-word canonical phrases, longest first.
func (s *Set) Phrases() []string {
	return s.phrases
}

// Words returns all canonical words sorted lexicographically.
func (s *Set) Words() []string {
	words := make([]string, 0, len(s.entries))
	for w := range s.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Categories returns the distinct category tags sorted lexicographically.
func (s *Set) Categories() []string {
	seen := make(map[string]struct{})
	for _, e := range s.entries {
		if e.Category != "" {
			seen[e.Category] = struct{}{}
		}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the entries tagged with category, keyed by word.
func (s *Set) ByCategory(category string) map[string]Entry {
	out := make(map[string]Entry)
	for w, e := range s.entries {
		if e.Category == category {
			out[w] = e
		}
	}
	return out
}

// Entries returns a copy of the full word-to-entry mapping.
func (s *Set) Entries() map[string]Entry {
	out := make(map[string]Entry, len(s.entries))
	for w, e := range s.entries {
		out[w] = e
	}
	return out
}

// Len reports the number of canonical entries.
func (s *Set) Len() int {
	return len(s.entries)
}

package assets

import (
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/signbridge-labs/signbridge-core/internal/config"
	"github.com/signbridge-labs/signbridge-core/internal/match"
)

// Library indexes sign clips on disk so matches can be annotated with
// playable video URLs. Filenames are matched case-insensitively: a match
// for "hello" picks up "Hello.mp4".
type Library struct {
	dir       string
	urlPrefix string
	log       *slog.Logger

	mu    sync.RWMutex
	files map[string]string // lowercase filename -> actual filename
}

func NewLibrary(cfg config.AssetsConfig, log *slog.Logger) *Library {
	l := &Library{
		dir:       cfg.VideosDir,
		urlPrefix: strings.TrimRight(cfg.URLPrefix, "/"),
		log:       log.With(slog.String("component", "assets")),
	}
	l.Refresh()
	return l
}

// Refresh rescans the videos directory. A missing directory leaves the
// library empty and disables annotation.
func (l *Library) Refresh() {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.mu.Lock()
		l.files = nil
		l.mu.Unlock()
		if !os.IsNotExist(err) {
			l.log.Warn("failed to scan videos directory", slog.String("dir", l.dir), slog.String("error", err.Error()))
		}
		return
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files[strings.ToLower(e.Name())] = e.Name()
	}

	l.mu.Lock()
	l.files = files
	l.mu.Unlock()
	l.log.Info("video library scanned", slog.String("dir", l.dir), slog.Int("clips", len(files)))
}

// Dir returns the directory the library serves clips from.
func (l *Library) Dir() string {
	return l.dir
}

// VideoURL returns the clip URL for a word, or empty when no clip exists.
func (l *Library) VideoURL(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if actual, ok := l.files[strings.ToLower(word)+".mp4"]; ok {
		return l.urlPrefix + "/" + path.Clean(actual)
	}
	return ""
}

// Annotate attaches clip URLs to matches in place: a whole-word clip when
// available, and per-letter clips for fingerspelled entries. Letter slots
// without a clip stay empty so the renderer keeps glyph alignment.
func (l *Library) Annotate(signs []match.Match) {
	l.mu.RLock()
	empty := len(l.files) == 0
	l.mu.RUnlock()
	if empty {
		return
	}

	for i := range signs {
		signs[i].VideoURL = l.VideoURL(signs[i].Word)

		if !signs[i].Fingerspelled() || len(signs[i].Letters) == 0 {
			continue
		}
		urls := make([]string, len(signs[i].Letters))
		any := false
		for j, letter := range signs[i].Letters {
			if u := l.VideoURL(letter); u != "" {
				urls[j] = u
				any = true
			}
		}
		if any {
			signs[i].LetterVideoURLs = urls
		}
	}
}

package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/bingo-backend/internal/bingo"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

var ErrDuplicatePhrase = errors.New("catalog contains a duplicate phrase")

// defaultPhrases is the built-in pool used when no catalog file is configured.
var defaultPhrases = []string{
	"Can everyone see my screen?",
	"You're on mute",
	"Let's take this offline",
	"Sorry, I was on mute",
	"Can you repeat that?",
	"Let's circle back",
	"Quick question",
	"I have a hard stop",
	"Sorry, go ahead",
	"Low-hanging fruit",
	"Move the needle",
	"Synergy",
	"Deep dive",
	"Ping me after",
	"Let's park that",
	"Action items",
	"Align on this",
	"Bandwidth",
	"At the end of the day",
	"Touch base",
	"Next slide, please",
	"Dog barking in background",
	"Someone joins late",
	"Awkward silence",
	"Is anyone else seeing lag?",
	"Let's give folks a minute to join",
	"Per my last email",
	"Take it with a grain of salt",
	"We'll follow up async",
	"Double-click on that",
}

type catalogFile struct {
	Phrases []string `yaml:"phrases"`
}

// Default returns a copy of the built-in phrase pool.
func Default() []string {
	phrases := make([]string, len(defaultPhrases))
	copy(phrases, defaultPhrases)

	return phrases
}

// Load reads the phrase pool from a YAML file, falling back to the built-in
// pool when path is empty. The result is always validated: a catalog that is
// too small or holds duplicates is rejected, never silently truncated.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err = Validate(file.Phrases); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return file.Phrases, nil
}

// Validate checks that the pool can fill a board: at least 24 phrases, all
// pairwise distinct.
func Validate(phrases []string) error {
	if len(phrases) < entity.PhraseCount {
		return fmt.Errorf("%w: need %d, have %d", bingo.ErrInsufficientCatalog, entity.PhraseCount, len(phrases))
	}

	seen := make(map[string]struct{}, len(phrases))
	for _, phrase := range phrases {
		if _, ok := seen[phrase]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicatePhrase, phrase)
		}
		seen[phrase] = struct{}{}
	}

	return nil
}

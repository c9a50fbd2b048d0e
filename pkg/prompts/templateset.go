package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/prompts.json
var dataFS embed.FS

const defaultSetPath = "data/prompts.json"

var (
	// ErrEmptyPrompts is returned when a document has no prompts.
	ErrEmptyPrompts = errors.New("prompts: template set has no prompts")
	// ErrMissingTitle is returned when a document has no eventTitle key.
	ErrMissingTitle = errors.New("prompts: eventTitle is required")
)

// TemplateSet is the ordered, immutable list of prompt templates plus the
// event title shown in the screen chrome. Positions are 1-based externally.
type TemplateSet struct {
	EventTitle string   `json:"eventTitle" yaml:"eventTitle"`
	Prompts    []string `json:"prompts" yaml:"prompts"`
}

// document mirrors TemplateSet but keeps pointers so missing keys can be told
// apart from empty values.
type document struct {
	EventTitle *string  `yaml:"eventTitle"`
	Prompts    []string `yaml:"prompts"`
}

// Len returns the number of templates.
func (s TemplateSet) Len() int {
	return len(s.Prompts)
}

// At returns the template at the 1-based position idx.
func (s TemplateSet) At(idx int) (string, bool) {
	if idx < 1 || idx > len(s.Prompts) {
		return "", false
	}
	return s.Prompts[idx-1], true
}

// Slug returns the lowercase event title with whitespace runs replaced by a
// single hyphen. It labels the host in the terminal-style header.
func (s TemplateSet) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(s.EventTitle)), "-")
}

// Parse decodes a template set document. JSON and YAML are both accepted; the
// document must contain exactly the eventTitle and prompts keys and at least
// one prompt.
func Parse(data []byte) (TemplateSet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return TemplateSet{}, errors.New("prompts: document is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return TemplateSet{}, fmt.Errorf("prompts: decode document: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return TemplateSet{}, errors.New("prompts: document must contain a single template set")
	}

	if doc.EventTitle == nil {
		return TemplateSet{}, ErrMissingTitle
	}
	if len(doc.Prompts) == 0 {
		return TemplateSet{}, ErrEmptyPrompts
	}

	return TemplateSet{
		EventTitle: *doc.EventTitle,
		Prompts:    append([]string(nil), doc.Prompts...),
	}, nil
}

// Load reads and parses a template set from a file on disk.
func Load(path string) (TemplateSet, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return TemplateSet{}, errors.New("prompts: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplateSet{}, fmt.Errorf("prompts: read %q: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a template set from fsys.
func LoadFS(fsys fs.FS, name string) (TemplateSet, error) {
	if fsys == nil {
		return TemplateSet{}, errors.New("prompts: filesystem is not configured")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return TemplateSet{}, fmt.Errorf("prompts: read %q: %w", name, err)
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultSet  TemplateSet
	defaultErr  error
)

// Default returns the embedded template set. The document is parsed once per
// process; callers receive a copy of the prompt slice.
func Default() (TemplateSet, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = LoadFS(dataFS, defaultSetPath)
	})
	if defaultErr != nil {
		return TemplateSet{}, defaultErr
	}
	return TemplateSet{
		EventTitle: defaultSet.EventTitle,
		Prompts:    append([]string(nil), defaultSet.Prompts...),
	}, nil
}

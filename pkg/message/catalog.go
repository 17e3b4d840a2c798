package message

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/herald/pkg/macro"
)

// Catalog holds one repository per language, loaded from message files.
// It is immutable after loading and safe for concurrent use.
type Catalog struct {
	repos    map[language.Tag]*MapRepository
	views    map[language.Tag]Repository
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
}

// LoadCatalog reads message files from fsys. The root must contain one
// directory per language, named by BCP-47 tag; every .yaml or .yml file in
// it contributes to that language:
//
//	en/messages.yaml
//	en/deaths.yml
//	de/messages.yaml
//
// fallback names the language used for keys missing elsewhere; it must be
// one of the loaded languages.
func LoadCatalog(fsys fs.FS, fallback string) (*Catalog, error) {
	fb, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: fallback language %q: %w", ErrInvalidFile, fallback, err)
	}

	options := make(map[language.Tag][]RepositoryOption)
	err = fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}
		tag, err := language.Parse(path.Base(dir))
		if err != nil {
			return fmt.Errorf("%w: directory %q is not a language tag", ErrInvalidFile, dir)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		opts, err := parseYAML(data)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", filePath, err)
		}
		options[tag] = append(options[tag], opts...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, ErrNoLanguages
	}
	if _, ok := options[fb]; !ok {
		return nil, fmt.Errorf("%w: fallback language %s has no files", ErrInvalidFile, fb)
	}

	c := &Catalog{repos: make(map[language.Tag]*MapRepository, len(options)), fallback: fb}
	for tag, opts := range options {
		repo, err := NewMapRepository(opts...)
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", tag, err)
		}
		c.repos[tag] = repo
	}

	// The fallback goes first so the matcher defaults to it.
	c.tags = append(c.tags, fb)
	for _, tag := range slices.SortedFunc(maps.Keys(c.repos), func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	}) {
		if tag != fb {
			c.tags = append(c.tags, tag)
		}
	}
	c.matcher = language.NewMatcher(c.tags)

	c.views = make(map[language.Tag]Repository, len(c.tags))
	for _, tag := range c.tags {
		if tag == fb {
			c.views[tag] = c.repos[tag]
			continue
		}
		c.views[tag] = newLayered(c.repos[tag], c.repos[fb])
	}

	return c, nil
}

// Languages returns the loaded languages, fallback first.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// Fallback returns the fallback language.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Record implements Repository using the fallback language.
func (c *Catalog) Record(key RecordKey) (Record, error) {
	return c.repos[c.fallback].Record(key)
}

// Constants implements ConstantProvider using the fallback language.
func (c *Catalog) Constants() map[macro.Key]string {
	return c.repos[c.fallback].Constants()
}

// Language returns a repository for the loaded language closest to want.
// Keys missing from that language are looked up in the fallback language.
func (c *Catalog) Language(want ...language.Tag) Repository {
	_, idx, _ := c.matcher.Match(want...)
	return c.views[c.tags[idx]]
}

// layered prefers primary and falls back for missing keys. Invalid records in
// primary are not masked by the fallback.
type layered struct {
	primary   *MapRepository
	fallback  *MapRepository
	constants map[macro.Key]string
}

func (l *layered) Record(key RecordKey) (Record, error) {
	rec, err := l.primary.Record(key)
	if errors.Is(err, ErrRecordNotFound) {
		return l.fallback.Record(key)
	}
	return rec, err
}

func newLayered(primary, fallback *MapRepository) *layered {
	constants := maps.Clone(fallback.Constants())
	maps.Copy(constants, primary.Constants())
	return &layered{primary: primary, fallback: fallback, constants: constants}
}

func (l *layered) Constants() map[macro.Key]string {
	return l.constants
}

var (
	_ Repository       = (*Catalog)(nil)
	_ ConstantProvider = (*Catalog)(nil)
	_ ConstantProvider = (*layered)(nil)
)

package message

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// A message file has two top-level sections:
//
//	constants:
//	  server: Survival
//	messages:
//	  welcome:
//	    body: "Welcome to {SERVER}, {RECIPIENT}!"
//	    repeat-delay: 10s
//	  player:
//	    death: "{VICTIM} was slain by {VICTIM.KILLER}"
//
// Names are upper-cased and dashes become underscores, so "player: death:"
// is PLAYER.DEATH. A mapping that contains none of the record fields is a
// group of records. A record may also be a plain string or a list of lines.
type document struct {
	Constants map[string]string `yaml:"constants"`
	Messages  yaml.Node         `yaml:"messages"`
}

type yamlRecord struct {
	Enabled     *bool     `yaml:"enabled"`
	Body        lines     `yaml:"body"`
	Title       yamlTitle `yaml:"title"`
	Subtitle    string    `yaml:"subtitle"`
	RepeatDelay string    `yaml:"repeat-delay"`
}

type yamlTitle struct {
	Text     string `yaml:"text"`
	Subtitle string `yaml:"subtitle"`
	FadeIn   string `yaml:"fade-in"`
	Stay     string `yaml:"stay"`
	FadeOut  string `yaml:"fade-out"`
}

var recordFields = map[string]bool{
	"enabled":      true,
	"body":         true,
	"title":        true,
	"subtitle":     true,
	"repeat-delay": true,
}

// lines accepts either a string or a list of strings.
type lines []string

func (l *lines) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = lines{value.Value}
		return nil
	case yaml.SequenceNode:
		var s []string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = s
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// UnmarshalYAML accepts a plain title string or a mapping with timings.
func (t *yamlTitle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Text = value.Value
		return nil
	}
	type plain yamlTitle
	return value.Decode((*plain)(t))
}

// ParseYAML builds a repository from one message file.
// Syntax errors and invalid message names fail the whole file. A record
// with bad field values is kept as invalid, so looking it up reports the
// reason and the pipeline treats it as disabled.
func ParseYAML(data []byte) (*MapRepository, error) {
	opts, err := parseYAML(data)
	if err != nil {
		return nil, err
	}
	return NewMapRepository(opts...)
}

func parseYAML(data []byte) ([]RepositoryOption, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	var opts []RepositoryOption
	for name, value := range doc.Constants {
		opts = append(opts, WithConstant(normalizeName(name), value))
	}

	if err := flatten("", &doc.Messages, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func flatten(prefix string, node *yaml.Node, opts *[]RepositoryOption) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: messages must be a mapping", ErrInvalidFile, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		nameNode, value := node.Content[i], node.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}

		name := normalizeName(nameNode.Value)
		if prefix != "" {
			name = prefix + "." + name
		}

		if value.Kind == yaml.MappingNode && !isRecordNode(value) {
			if err := flatten(name, value, opts); err != nil {
				return err
			}
			continue
		}

		key, err := NewRecordKey(name)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidFile, nameNode.Line, err)
		}

		rec, err := decodeRecord(key, value)
		if err != nil {
			*opts = append(*opts, withInvalid(key, err))
			continue
		}
		*opts = append(*opts, WithRecords(rec))
	}
	return nil
}

func isRecordNode(node *yaml.Node) bool {
	for i := 0; i < len(node.Content); i += 2 {
		if recordFields[node.Content[i].Value] {
			return true
		}
	}
	return false
}

func decodeRecord(key RecordKey, node *yaml.Node) (Record, error) {
	var raw yamlRecord
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		if err := raw.Body.UnmarshalYAML(node); err != nil {
			return Record{}, err
		}
	default:
		if err := node.Decode(&raw); err != nil {
			return Record{}, err
		}
	}

	rec := Record{
		Key:     key,
		Body:    strings.Join(raw.Body, "\n"),
		Enabled: raw.Enabled == nil || *raw.Enabled,
		Title: Title{
			Text:     raw.Title.Text,
			Subtitle: raw.Title.Subtitle,
		},
	}
	if rec.Title.Subtitle == "" {
		rec.Title.Subtitle = raw.Subtitle
	}

	var errs []error
	rec.RepeatDelay, errs = parseDuration("repeat-delay", raw.RepeatDelay, 0, errs)
	rec.Title.FadeIn, errs = parseDuration("fade-in", raw.Title.FadeIn, DefaultFadeIn, errs)
	rec.Title.Stay, errs = parseDuration("stay", raw.Title.Stay, DefaultStay, errs)
	rec.Title.FadeOut, errs = parseDuration("fade-out", raw.Title.FadeOut, DefaultFadeOut, errs)

	if !rec.HasBody() && rec.Title.IsEmpty() {
		errs = append(errs, errors.New("no body or title"))
	}

	if err := errors.Join(errs...); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseDuration(field, s string, def time.Duration, errs []error) (time.Duration, []error) {
	if s == "" {
		return def, errs
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def, append(errs, fmt.Errorf("%s: %w", field, err))
	}
	if d < 0 {
		return def, append(errs, fmt.Errorf("%s: negative duration %s", field, s))
	}
	return d, errs
}

func normalizeName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}

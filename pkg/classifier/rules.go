package classifier

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rule maps any of its keywords (case-insensitive substrings) to Label.
// An empty Label falls back to the title-cased first keyword.
type Rule struct {
	Label    string   `yaml:"label,omitempty"`
	Keywords []string `yaml:"keywords"`
}

// DirectionRule maps keywords to a transaction direction.
type DirectionRule struct {
	Direction models.Direction `yaml:"direction"`
	Keywords  []string         `yaml:"keywords"`
}

// Rules holds every ordered table the classifier consults. Order is significant in
// each list: the first matching entry wins.
type Rules struct {
	Gate       []string        `yaml:"gate"`
	Directions []DirectionRule `yaml:"directions"`
	Banks      []Rule          `yaml:"banks"`
	Modes      []Rule          `yaml:"modes"`
	Merchants  []Rule          `yaml:"merchants"`
	Stopwords  []string        `yaml:"stopwords"`
}

// DefaultRules returns the embedded rule tables.
func DefaultRules() Rules {
	rules, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded classifier rules are invalid: %v", err))
	}
	return rules
}

// ParseRules decodes and validates a YAML rule document.
func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse classifier rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRules reads a rule document from disk.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read classifier rules %s: %w", path, err)
	}
	return ParseRules(data)
}

// Validate rejects tables the classifier cannot evaluate.
func (r Rules) Validate() error {
	if len(r.Gate) == 0 {
		return errors.New("classifier rules: gate keyword list is empty")
	}
	for i, d := range r.Directions {
		if !d.Direction.Valid() {
			return fmt.Errorf("classifier rules: directions[%d] has unknown direction %q", i, d.Direction)
		}
		if len(d.Keywords) == 0 {
			return fmt.Errorf("classifier rules: directions[%d] has no keywords", i)
		}
	}
	for name, list := range map[string][]Rule{"banks": r.Banks, "modes": r.Modes, "merchants": r.Merchants} {
		for i, rule := range list {
			if len(rule.Keywords) == 0 {
				return fmt.Errorf("classifier rules: %s[%d] has no keywords", name, i)
			}
		}
	}
	return nil
}

type compiledRule struct {
	label    string
	keywords []string
}

type compiledDirection struct {
	direction models.Direction
	keywords  []string
}

type compiledRules struct {
	gate       []string
	directions []compiledDirection
	banks      []compiledRule
	modes      []compiledRule
	merchants  []compiledRule
	stopwords  map[string]struct{}
}

func compile(r Rules) compiledRules {
	c := compiledRules{
		gate:      lowerAll(r.Gate),
		banks:     compileList(r.Banks),
		modes:     compileList(r.Modes),
		merchants: compileList(r.Merchants),
		stopwords: make(map[string]struct{}, len(r.Stopwords)),
	}
	for _, d := range r.Directions {
		c.directions = append(c.directions, compiledDirection{direction: d.Direction, keywords: lowerAll(d.Keywords)})
	}
	for _, w := range r.Stopwords {
		c.stopwords[strings.ToLower(w)] = struct{}{}
	}
	return c
}

func compileList(rules []Rule) []compiledRule {
	titleCaser := cases.Title(language.Und)
	out := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		keywords := lowerAll(rule.Keywords)
		label := rule.Label
		if label == "" {
			label = titleCaser.String(keywords[0])
		}
		out = append(out, compiledRule{label: label, keywords: keywords})
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// firstMatch returns the label of the first rule with a keyword contained in lower.
func firstMatch(rules []compiledRule, lower string) (string, bool) {
	for _, rule := range rules {
		if containsAny(lower, rule.keywords) {
			return rule.label, true
		}
	}
	return "", false
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

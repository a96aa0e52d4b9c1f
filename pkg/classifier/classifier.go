// Package classifier turns free-text bank and SMS notifications into structured
// transaction results using ordered keyword tables and a handful of regexes.
package classifier

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/chris/dashboard-wallpaper/pkg/models"
)

const maxDescriptionLength = 40

var (
	// Group 1 is the optional currency prefix, group 2 the number. Word prefixes
	// must start a word so that "transfers 2" is not read as "rs 2".
	amountPattern = regexp.MustCompile(`(?i)((?:\b(?:rs\.?|inr)|₹)\s*)?(\d[\d,]*(?:\.\d{2})?)`)

	balancePattern = regexp.MustCompile(`(?i)\b(?:balance|bal|available)\b[\s:.\-]*(?:is\s*)?(?:(?:rs\.?|₹|inr)\s*)?(\d[\d,]*(?:\.\d{2})?)`)

	// An abbreviated honorific ("Mr. ", "Dr. ") is kept as part of the name.
	counterpartyPattern = regexp.MustCompile(`(?i)\b(?:to|from)\s+((?:(?:mr|mrs|ms|dr|shri|smt)\.\s*)?[a-z0-9][a-z0-9 .&'@_\-]*?)\s*(?:\b(?:on|via|ref|using|for|at|upi|imps|neft|rtgs|avl|bal|balance|a/c|acct|account|txn|is|has|was|with)\b|[,;:]|\.(?:\s|$)|$)`)
)

// Result is the structured view of a message that passed the gate.
type Result struct {
	Amount      decimal.Decimal
	Direction   models.Direction
	Bank        string
	Mode        string
	Balance     *decimal.Decimal
	Description string
	RawMessage  string
	Evidence    models.Evidence
	Confidence  models.Confidence
}

// Classifier evaluates a fixed rule set. It holds no mutable state and is safe
// for concurrent use.
type Classifier struct {
	rules compiledRules
}

// New validates rules and builds a Classifier from them.
func New(rules Rules) (*Classifier, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{rules: compile(rules)}, nil
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns a shared Classifier built from the embedded rules.
func Default() *Classifier {
	defaultOnce.Do(func() {
		c, err := New(DefaultRules())
		if err != nil {
			panic(err)
		}
		defaultClassifier = c
	})
	return defaultClassifier
}

// Classify runs message through the default rules.
func Classify(message string) (Result, bool) {
	return Default().Classify(message)
}

// IsTransaction reports whether message passes the keyword gate.
func (c *Classifier) IsTransaction(message string) bool {
	return containsAny(strings.ToLower(message), c.rules.gate)
}

// Classify returns false when the message fails the gate. Every later step has a
// default, so a message that passes the gate always yields a Result.
func (c *Classifier) Classify(message string) (Result, bool) {
	lower := strings.ToLower(message)
	if !containsAny(lower, c.rules.gate) {
		return Result{}, false
	}

	res := Result{
		Amount:      decimal.Zero,
		Direction:   models.DEBITED,
		Bank:        models.UnknownLabel,
		Mode:        models.UnknownLabel,
		Description: models.DefaultDescription,
		RawMessage:  message,
	}

	if amount, ok := extractAmount(message); ok {
		res.Amount = amount
		res.Evidence.Amount = true
	}
	if dir, ok := c.direction(lower); ok {
		res.Direction = dir
		res.Evidence.Direction = true
	}
	if bank, ok := firstMatch(c.rules.banks, lower); ok {
		res.Bank = bank
		res.Evidence.Bank = true
	}
	if mode, ok := firstMatch(c.rules.modes, lower); ok {
		res.Mode = mode
		res.Evidence.Mode = true
	}
	if balance, ok := extractBalance(message); ok {
		res.Balance = &balance
		res.Evidence.Balance = true
	}
	if desc, ok := c.description(message, lower); ok {
		res.Description = desc
		res.Evidence.Description = true
	}

	res.Confidence = confidence(res.Evidence)
	return res, true
}

func (c *Classifier) direction(lower string) (models.Direction, bool) {
	for _, d := range c.rules.directions {
		if containsAny(lower, d.keywords) {
			return d.direction, true
		}
	}
	return "", false
}

// extractAmount takes the first currency-prefixed number, or the first bare number
// when no match carries a currency prefix.
func extractAmount(message string) (decimal.Decimal, bool) {
	matches := amountPattern.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return decimal.Zero, false
	}
	chosen := matches[0]
	for _, m := range matches {
		if m[1] != "" {
			chosen = m
			break
		}
	}
	return parseNumber(chosen[2])
}

func extractBalance(message string) (decimal.Decimal, bool) {
	m := balancePattern.FindStringSubmatch(message)
	if m == nil {
		return decimal.Zero, false
	}
	return parseNumber(m[1])
}

func parseNumber(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d.Abs(), true
}

func (c *Classifier) description(message, lower string) (string, bool) {
	for _, m := range counterpartyPattern.FindAllStringSubmatch(message, -1) {
		name := strings.TrimRight(strings.TrimSpace(m[1]), ".-_ ")
		if name == "" || c.isStopword(name) || looksLikeAccountNumber(name) {
			continue
		}
		return truncate(name, maxDescriptionLength), true
	}
	if merchant, ok := firstMatch(c.rules.merchants, lower); ok {
		return merchant, true
	}
	return "", false
}

func (c *Classifier) isStopword(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := c.rules.stopwords[lower]; ok {
		return true
	}
	first, _, _ := strings.Cut(lower, " ")
	_, ok := c.rules.stopwords[first]
	return ok
}

// looksLikeAccountNumber matches masked references such as "XX1234" or "****5678".
func looksLikeAccountNumber(name string) bool {
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r != 'x' {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}

func confidence(e models.Evidence) models.Confidence {
	switch {
	case e.Amount && e.Direction && e.Bank:
		return models.ConfidenceHigh
	case e.Amount:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

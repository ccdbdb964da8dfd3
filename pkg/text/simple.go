package text

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using basic string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(filePath, content string, rules []ReplacementRule) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
	}

	current := content
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}
		if !Matches(rule.FileFilterGlob, filePath) {
			continue
		}

		n := strings.Count(current, rule.FromText)
		if n == 0 {
			continue
		}

		current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
		result.ReplacementCount += n
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file filter glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// Matches reports whether glob selects filePath. An empty glob matches every
// path; a glob without a slash is also tried against the base name. An empty
// path only matches an empty glob.
func Matches(glob, filePath string) bool {
	if glob == "" {
		return true
	}
	if filePath == "" {
		return false
	}

	slashed := filepath.ToSlash(filePath)
	if ok, _ := doublestar.Match(glob, slashed); ok {
		return true
	}
	if !strings.Contains(glob, "/") {
		ok, _ := doublestar.Match(glob, path.Base(slashed))
		return ok
	}
	return false
}

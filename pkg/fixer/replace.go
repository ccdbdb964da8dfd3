package fixer

import (
	"github.com/walteh/codefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const NameReplace = "replace"

// 🔄 Replace applies configured literal replacements, optionally per glob
type Replace struct {
	replacer text.TextReplacer
	rules    []text.ReplacementRule
}

// NewReplace validates rules and returns a fixer applying them in order.
func NewReplace(rules []text.ReplacementRule) (*Replace, error) {
	replacer := text.NewSimpleTextReplacer()
	if err := replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating replacement rules: %w", err)
	}
	return &Replace{
		replacer: replacer,
		rules:    append([]text.ReplacementRule(nil), rules...),
	}, nil
}

func (r *Replace) Name() string { return NameReplace }

// Transform applies only the rules without a file filter.
func (r *Replace) Transform(content string) (string, error) {
	return r.TransformPath("", content)
}

func (r *Replace) TransformPath(path, content string) (string, error) {
	return r.replacer.ReplaceText(path, content, r.rules).ModifiedContent, nil
}

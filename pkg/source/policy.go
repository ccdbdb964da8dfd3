package source

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultInclude matches the text formats the built-in fixers are meant for.
var DefaultInclude = []string{
	"**/*.{go,php,py,rb,js,jsx,ts,tsx,java,kt,rs,c,h,cc,cpp,hpp,cs,swift,scala}",
	"**/*.{md,txt,rst,yml,yaml,json,toml,xml,html,twig,css,scss,sh,bash,sql}",
}

// DefaultExclude skips vendored dependency trees.
var DefaultExclude = []string{
	"vendor/**",
	"**/node_modules/**",
}

// 🔍 Policy decides which files of a directory tree are discovered
type Policy struct {
	Include    []string // doublestar patterns, empty matches every file
	Exclude    []string // doublestar patterns, checked after Include
	SkipHidden bool     // skip files and directories starting with a dot
}

// 🏭 DefaultPolicy returns the policy used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{
		Include:    append([]string(nil), DefaultInclude...),
		Exclude:    append([]string(nil), DefaultExclude...),
		SkipHidden: true,
	}
}

// ✅ Validate checks every pattern is well formed
func (p Policy) Validate() error {
	for _, pattern := range p.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid include pattern %q", pattern)
		}
	}
	for _, pattern := range p.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Match reports whether rel, a slash separated path relative to the tree
// root, is discovered by the policy.
func (p Policy) Match(rel string) bool {
	if p.SkipHidden && isHidden(path.Base(rel)) {
		return false
	}

	if len(p.Include) > 0 && !matchAny(p.Include, rel) {
		return false
	}

	return !matchAny(p.Exclude, rel)
}

// skipDir reports whether nothing below the directory rel can be discovered.
func (p Policy) skipDir(rel string) bool {
	if p.SkipHidden && isHidden(path.Base(rel)) {
		return true
	}
	return p.excludesTree(rel)
}

// excludesTree reports whether an exclude pattern of the form `dir/**`
// covers rel and so every file below it.
func (p Policy) excludesTree(rel string) bool {
	for _, pattern := range p.Exclude {
		prefix, ok := strings.CutSuffix(pattern, "/**")
		if !ok {
			continue
		}
		if matched, _ := doublestar.Match(prefix, rel); matched {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		// patterns were validated, a match error cannot happen here
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != ".."
}

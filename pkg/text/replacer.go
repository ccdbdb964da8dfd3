package text

// ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the text to replace
	FromText string

	// ToText is the replacement text
	ToText string

	// FileFilterGlob limits the rule to matching paths, empty applies everywhere
	FileFilterGlob string
}

// ReplacementResult contains the results of applying a rule set to one file
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies every rule whose filter matches path, in order
	ReplaceText(path, content string, rules []ReplacementRule) *ReplacementResult

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}

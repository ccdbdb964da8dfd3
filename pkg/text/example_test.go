package text_test

import (
	"fmt"

	"github.com/walteh/codefix/pkg/text"
)

func ExampleSimpleTextReplacer_ReplaceText() {
	replacer := text.NewSimpleTextReplacer()

	rules := []text.ReplacementRule{
		{FromText: "World", ToText: "Universe", FileFilterGlob: "*.txt"},
		{FromText: "Hello", ToText: "Hi", FileFilterGlob: "*.md"},
	}

	result := replacer.ReplaceText("docs/greeting.txt", "Hello World!", rules)

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Replacements: %d\n", result.ReplacementCount)
	// Output:
	// Modified: Hello Universe!
	// Replacements: 1
}

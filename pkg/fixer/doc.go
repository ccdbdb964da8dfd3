/*
Package fixer defines transformation rules and the registry that orders them.

	+-------------+      +-------------+      +-------------+
	|  strip_bom  | ---> | line_endings| ---> |    ...      |
	+-------------+      +-------------+      +-------------+

🎯 Purpose:
- Fixer is a named, pure content -> content function
- Registry holds the ordered, name-unique set applied to every file
- Built-ins are selected all at once or by name, ad-hoc rules are appended after

📝 Ordering:
Built-ins are applied in canonical order (see Builtins). The output of one
fixer is the input of the next, so the order is part of the contract.

🔍 Example:

	reg := fixer.NewRegistry()
	if err := reg.RegisterSubset([]string{"line_endings", "ensure_final_newline"}); err != nil {
		return err // *UnknownFixerError for names that are not built-ins
	}
	if err := reg.Append(fixer.OrderedImports("use ")); err != nil {
		return err
	}
*/
package fixer

/*
Package config loads the optional project file that tunes a codefix run.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+ +---+--+   +----+--+ +----+--+
	| YAML | | HCL  |   | JSON  | | TOML  |
	+------+ +------+   +-------+ +-------+

🎯 Purpose:
- Finds .codefix.{yaml,yml,hcl,json,toml} in the working directory
- Parses it with the parser registered for its extension
- Fills defaults and rejects invalid globs or replacement rules

🔄 Flow:
1. Resolve picks the explicit --config path, a discovered file, or Default()
2. Load reads the file and hands it to the matching Parser
3. Validate normalizes fixer names and fills defaults
4. Policy and ReplacementRules feed the source and fixer packages

Every format rejects unknown fields. Command line flags override whatever
the file says; that merge happens in cmd/codefix.

🔍 Example:

	cfg, err := config.Resolve(ctx, flagConfig, ".")
	if err != nil {
		return err
	}
	src, err := source.Resolve(ctx, path, cfg.Policy())
*/
package config

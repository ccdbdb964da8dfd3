/*
Package source turns a path argument into a lazy, ordered sequence of files.

	            +-------------+
	            |   Source    |
	            | (Discovery) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|  Single   |           | Directory |
	|   File    |           |   Tree    |
	+-----------+           +-----------+

🎯 Purpose:
- Hides the difference between "one file" and "a directory tree"
- Applies the discovery policy (include/exclude globs, hidden files)
- Yields files lazily so callers can stop at any point

🔄 Flow:
1. Resolve stats the path argument
2. A regular file becomes a SingleFile, bypassing the policy
3. A readable directory becomes a DirectoryTree walked in lexical order
4. Anything else fails with ErrPathNotFound

📝 Ordering:
Directory trees are walked with filepath.WalkDir, which visits entries in
lexical order. Two runs over an unchanged tree always yield the same sequence.

🔍 Example:

	src, err := source.Resolve(ctx, "./src", source.DefaultPolicy())
	if err != nil {
		return err
	}
	for fh, err := range src.Files(ctx) {
		// ...
	}
*/
package source

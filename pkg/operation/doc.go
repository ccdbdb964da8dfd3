/*
Package operation implements the fix run: every discovered file is folded
through the registered fixers and the result is persisted or reported.

	+-------------+
	|   Source    |
	| (Discovery) |
	+------+------+
	       |
	+------+------+
	| Orchestrator|
	|  (Fixers)   |
	+------+------+
	       |
	+------+------+
	|   Status    |
	|  (Storage)  |
	+-------------+

🔄 Flow, per file in discovery order:

  1. Start the per-file timer (section fix_file, event named by path)
  2. Read the content; a read error is recorded and the file skipped
  3. Fold the content through every fixer, noting which ones changed it;
     an error (or panic) discards the partial result and records the fixer
  4. Unless dry-run, write changed content back; a write error is recorded
     and the file is not reported as changed
  5. Report the changed file with the fixers that applied
  6. Stop the per-file timer

⚡ Guarantees:

  - One file's failure never stops the run
  - A file listed as changed matches its reported content on disk (dry-run
    never touches disk)
  - Changed files are reported in discovery order, also with Jobs > 1
  - The error sink and stopwatch are created fresh for every Run

🔍 Example:

	orch, err := operation.New(operation.Options{Jobs: 4})
	if err != nil {
		return err
	}
	report, err := orch.Run(ctx, src, reg, false)
	if err != nil {
		return err
	}
	if !report.Clean() {
		os.Exit(1)
	}
*/
package operation

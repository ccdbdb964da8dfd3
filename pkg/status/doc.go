/*
Package status persists fixed content and names the outcome of each file.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Store   |           | FileStatus|
	| (Read/    |           | (Outcome) |
	|  Write)   |           |           |
	+-----------+           +-----------+

🎯 Purpose:

  - Reads file content for the orchestrator
  - Writes fixed content back in place, atomically
  - Names the per-file outcome used in logs

⚡ Key Responsibilities:

  - Atomic writes (temp file + rename in the same directory)
  - Preserving the original file mode
  - Never leaving temp files behind on failure

🤝 Interfaces:

  - Store: the only file I/O the orchestrator performs; tests swap it for a
    mock to simulate permission and disk errors
*/
package status

package dupfinder

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Find and optionally delete duplicate files in a folder"
	MsgRootLong = `dupfinder scans a single folder (no recursion) for duplicate files.

Exact duplicates are detected by content hash. With --similarity RATIO,
files whose line content is at least RATIO similar are also grouped.
Within each group the alphabetically first file is kept; the rest are
listed, or deleted when --delete is given.`
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag help
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDelete     = "Actually delete duplicate files (default is report only)"
	MsgFlagSimilarity = "Similarity threshold in [0.0, 1.0]; enables the near-duplicate check"
	MsgFlagReport     = "Write a scan report to this path (.json, .yaml or .xml)"
	MsgFlagConfig     = "Load defaults from a TOML config file"
	MsgFlagNoColor    = "Disable colored output"

	// Status messages
	MsgAbortingDeletion = "Aborting deletion."
	MsgDeletedItem      = "  Deleted: %s\n"
	MsgDeleteFailedItem = "  Error deleting %s: %v\n"
)

package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A runtime documentation registry"
	MsgRootLong       = "docket attaches documentation to topics, merges it incrementally,\nand renders it for the console or as HTML."
	MsgShowShort      = "Show documentation for one or more topics"
	MsgExportShort    = "Export topic documentation as an HTML file"
	MsgProvidersShort = "List extension providers and their state"
	MsgTopicsShort    = "Display docket's own documentation topics"
	MsgGenconfigShort = "Print the default configuration as TOML"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgNoTopics       = "No help topics available."
	MsgAvailTopics    = "Available topics:"
	MsgUnknownTopic   = "Unknown topic '%s'. Run 'docket topics' for the list.\n"
	MsgExportedFormat = "Wrote %s (%d topics)\n"
	MsgProviderOn     = "enabled"
	MsgProviderOff    = "available"
)

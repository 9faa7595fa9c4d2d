// Parses flags and dispatches releasekit subcommands.
//
// The CLI accepts the following global flags:
//
//	-q, --quiet    Suppress informational output.
//	-d, --debug    Enable debug output.
//	-c, --config   Path to the config file.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level before the selected
// subcommand runs.
package cli

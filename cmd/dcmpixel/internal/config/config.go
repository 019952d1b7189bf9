// Package config holds the CLI's global flags, shared by every subcommand.
package config

// OutputFormat selects how a command renders its textual report.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// GlobalConfig is embedded into the root CLI struct; kong populates it from
// flags shared across every subcommand, and it is validated once before any
// subcommand runs.
type GlobalConfig struct {
	LogLevel  string       `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Minimum log level"`
	Pretty    bool         `name:"pretty" default:"true" negatable:"" help:"Human-readable (vs JSON) log output"`
	Format    OutputFormat `name:"report-format" enum:"table,json" default:"table" help:"Report output format" validate:"oneof=table json"`
	OutputDir string       `name:"output-dir" default:"." type:"path" help:"Directory for extracted artifacts" validate:"required"`
	Debug     bool         `name:"debug" default:"false" help:"Include caller location in log output"`
}

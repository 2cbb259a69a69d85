package config

import "github.com/spf13/viper"

// Default values. File names match what consumers of the published
// declarations import.
const (
	DefaultOutputDir     = "types"
	DefaultProtocolFile  = "protocol.d.ts"
	DefaultMappingFile   = "protocol-mapping.d.ts"
	DefaultAPIFile       = "protocol-proxy-api.d.ts"
	DefaultMappingModule = "ProtocolMapping"
	DefaultAPIModule     = "ProtocolProxyApi"
	DefaultLogLevel      = "warn"
	DefaultFetchTimeout  = "30s"
)

// DefaultSources are the two halves of the DevTools protocol.
var DefaultSources = []string{
	"json/js_protocol.json",
	"json/browser_protocol.json",
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Schema defaults
	v.SetDefault("schema.sources", DefaultSources)
	v.SetDefault("schema.version_constraint", "")
	v.SetDefault("schema.strict", false) // lenient: unknown shapes pass through
	v.SetDefault("schema.cache_dir", "")
	v.SetDefault("schema.fetch_timeout", DefaultFetchTimeout)
	v.SetDefault("schema.block_private_hosts", false)

	// Output defaults
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.protocol_file", DefaultProtocolFile)
	v.SetDefault("output.mapping_file", DefaultMappingFile)
	v.SetDefault("output.api_file", DefaultAPIFile)
	v.SetDefault("output.format_command", "")

	// Generate defaults
	v.SetDefault("generate.mapping_module", DefaultMappingModule)
	v.SetDefault("generate.api_module", DefaultAPIModule)
	v.SetDefault("generate.annotate", false)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", DefaultLogLevel)
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Schema: SchemaConfig{
			Sources:      append([]string(nil), DefaultSources...),
			FetchTimeout: DefaultFetchTimeout,
		},
		Output: OutputConfig{
			Dir:          DefaultOutputDir,
			ProtocolFile: DefaultProtocolFile,
			MappingFile:  DefaultMappingFile,
			APIFile:      DefaultAPIFile,
		},
		Generate: GenerateConfig{
			MappingModule: DefaultMappingModule,
			APIModule:     DefaultAPIModule,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

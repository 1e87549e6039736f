package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagMode      = flag.String("mode", "", "Channels to synthesize: none, uv, normals, both")
	flagUVMapping = flag.String("uv", "", "UV mapping for synthesized coordinates: zero, planar, spherical")
	flagCenter    = flag.String("center", "", "Recenter reference: centroid, bounds")
	flagEncoding  = flag.String("encoding", "", "Text encoding of mesh files when no BOM is present")
	flagRaw       = flag.Bool("raw", false, "Skip scale normalization and recentering")
	flagOut       = flag.String("out", "", "Output directory for converted buffers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments (command and its operands).
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Load.Synthesize = *flagMode
	}
	if *flagUVMapping != "" {
		cfg.Load.UVMapping = *flagUVMapping
	}
	if *flagCenter != "" {
		cfg.Load.Center = *flagCenter
	}
	if *flagEncoding != "" {
		cfg.Load.Encoding = *flagEncoding
	}
	if *flagRaw {
		cfg.Load.Normalize = false
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
}

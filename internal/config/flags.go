package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPartitions = flag.Int("partitions", 0, "Subdivisions per cube edge")
	flagRadius     = flag.Float64("radius", 0, "Sphere radius (sets all three radii)")
	flagOBJ        = flag.String("obj", "", "Write a Wavefront OBJ to this path")
	flagServe      = flag.Bool("serve", false, "Serve the geometry over websocket")
	flagAddr       = flag.String("addr", "", "Listen address for the geometry server")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagPartitions > 0 {
		cfg.Mesh.Partitions = *flagPartitions
	}
	if *flagRadius > 0 {
		cfg.Ellipsoid.RadiusX = *flagRadius
		cfg.Ellipsoid.RadiusY = *flagRadius
		cfg.Ellipsoid.RadiusZ = *flagRadius
	}
	if *flagOBJ != "" {
		cfg.Output.OBJPath = *flagOBJ
	}
	if *flagServe {
		cfg.Serve.Enabled = true
	}
	if *flagAddr != "" {
		cfg.Serve.Addr = *flagAddr
		cfg.Serve.Enabled = true
	}
}

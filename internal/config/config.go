// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Ellipsoid EllipsoidConfig `yaml:"ellipsoid"`
	Mesh      MeshConfig      `yaml:"mesh"`
	Output    OutputConfig    `yaml:"output"`
	Serve     ServeConfig     `yaml:"serve"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EllipsoidConfig holds the ellipsoid radii along each axis.
type EllipsoidConfig struct {
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`
	RadiusZ float64 `yaml:"radius_z"`
}

// MeshConfig holds tessellation settings.
type MeshConfig struct {
	Partitions int  `yaml:"partitions"` // subdivisions per cube edge
	Positions  bool `yaml:"positions"`
	Normals    bool `yaml:"normals"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	OBJPath string `yaml:"obj_path"` // write a Wavefront OBJ here if set
}

// ServeConfig holds the geometry inspection server settings.
type ServeConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a unit sphere at
// 32 partitions with positions and normals.
func Default() *Config {
	return &Config{
		Ellipsoid: EllipsoidConfig{
			RadiusX: 1,
			RadiusY: 1,
			RadiusZ: 1,
		},
		Mesh: MeshConfig{
			Partitions: 32,
			Positions:  true,
			Normals:    true,
		},
		Output: OutputConfig{
			OBJPath: "",
		},
		Serve: ServeConfig{
			Enabled: false,
			Addr:    ":8080",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test ellipsoid defaults (unit sphere)
	if cfg.Ellipsoid.RadiusX != 1 || cfg.Ellipsoid.RadiusY != 1 || cfg.Ellipsoid.RadiusZ != 1 {
		t.Errorf("expected unit sphere radii, got (%f, %f, %f)",
			cfg.Ellipsoid.RadiusX, cfg.Ellipsoid.RadiusY, cfg.Ellipsoid.RadiusZ)
	}

	// Test mesh defaults
	if cfg.Mesh.Partitions != 32 {
		t.Errorf("expected 32 partitions, got %d", cfg.Mesh.Partitions)
	}
	if !cfg.Mesh.Positions {
		t.Error("expected positions to be enabled by default")
	}
	if !cfg.Mesh.Normals {
		t.Error("expected normals to be enabled by default")
	}

	// Test serve defaults
	if cfg.Serve.Enabled {
		t.Error("expected serving to be disabled by default")
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("expected addr ':8080', got %s", cfg.Serve.Addr)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "globegen.yaml")

	yamlContent := `
ellipsoid:
  radius_x: 6378137
  radius_y: 6378137
  radius_z: 6356752.3142451793

mesh:
  partitions: 64
  positions: true
  normals: false

output:
  obj_path: "globe.obj"

serve:
  enabled: true
  addr: ":9090"

logging:
  level: "debug"
  log_file: "globegen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Ellipsoid.RadiusX != 6378137 {
		t.Errorf("expected radius_x 6378137, got %f", cfg.Ellipsoid.RadiusX)
	}
	if cfg.Ellipsoid.RadiusZ != 6356752.3142451793 {
		t.Errorf("expected polar radius, got %f", cfg.Ellipsoid.RadiusZ)
	}
	if cfg.Mesh.Partitions != 64 {
		t.Errorf("expected 64 partitions, got %d", cfg.Mesh.Partitions)
	}
	if cfg.Mesh.Normals {
		t.Error("expected normals to be disabled")
	}
	if cfg.Output.OBJPath != "globe.obj" {
		t.Errorf("expected obj path 'globe.obj', got %s", cfg.Output.OBJPath)
	}
	if !cfg.Serve.Enabled {
		t.Error("expected serving to be enabled")
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("expected addr ':9090', got %s", cfg.Serve.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mesh:
  partitions: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/globegen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty absolute path; the actual
	// location depends on the OS.
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	*flagDebug = true
	*flagPartitions = 16
	*flagRadius = 2.5
	*flagOBJ = "out.obj"
	*flagAddr = ":7000"
	defer func() {
		*flagDebug = false
		*flagPartitions = 0
		*flagRadius = 0
		*flagOBJ = ""
		*flagAddr = ""
	}()

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Mesh.Partitions != 16 {
		t.Errorf("expected 16 partitions, got %d", cfg.Mesh.Partitions)
	}
	if cfg.Ellipsoid.RadiusX != 2.5 || cfg.Ellipsoid.RadiusY != 2.5 || cfg.Ellipsoid.RadiusZ != 2.5 {
		t.Errorf("expected all radii 2.5, got (%f, %f, %f)",
			cfg.Ellipsoid.RadiusX, cfg.Ellipsoid.RadiusY, cfg.Ellipsoid.RadiusZ)
	}
	if cfg.Output.OBJPath != "out.obj" {
		t.Errorf("expected obj path 'out.obj', got %s", cfg.Output.OBJPath)
	}
	if !cfg.Serve.Enabled {
		t.Error("expected addr flag to enable serving")
	}
	if cfg.Serve.Addr != ":7000" {
		t.Errorf("expected addr ':7000', got %s", cfg.Serve.Addr)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "globegen.yaml")

	cfg := Default()
	cfg.Mesh.Partitions = 48
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Mesh.Partitions != 48 {
		t.Errorf("round-tripped partitions = %d, want 48", loaded.Mesh.Partitions)
	}
}

// globegen generates triangulated ellipsoid globe geometry and writes or
// serves the result.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/madw0lf/cesium/internal/config"
	"github.com/madw0lf/cesium/internal/export"
	"github.com/madw0lf/cesium/internal/logger"
	"github.com/madw0lf/cesium/internal/server"
	"github.com/madw0lf/cesium/pkg/geometry"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOpts := logger.DefaultOptions()
	logOpts.Level = cfg.Logging.Level
	logOpts.File = cfg.Logging.LogFile
	if err := logger.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts := geometry.DefaultEllipsoidSurfaceOptions()
	opts.Ellipsoid = geometry.NewEllipsoid(
		cfg.Ellipsoid.RadiusX,
		cfg.Ellipsoid.RadiusY,
		cfg.Ellipsoid.RadiusZ,
	)
	opts.NumberOfPartitions = cfg.Mesh.Partitions
	opts.VertexFormat = geometry.VertexFormat{
		Position: cfg.Mesh.Positions,
		Normal:   cfg.Mesh.Normals,
	}

	start := time.Now()
	geom, err := geometry.NewEllipsoidSurface(opts)
	if err != nil {
		logger.Log.Fatal("generating geometry", zap.Error(err))
	}
	logger.Log.Info("geometry generated",
		zap.Int("partitions", cfg.Mesh.Partitions),
		zap.Int("vertices", geom.VertexCount()),
		zap.Int("triangles", geom.TriangleCount()),
		zap.Float64("boundingRadius", geom.BoundingSphere.Radius),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Output.OBJPath != "" {
		if err := export.WriteOBJFile(cfg.Output.OBJPath, geom); err != nil {
			logger.Log.Fatal("writing OBJ", zap.Error(err))
		}
		logger.Log.Info("wrote OBJ", zap.String("path", cfg.Output.OBJPath))
	}

	if cfg.Serve.Enabled {
		srv := server.New(geom, logger.Log)
		if err := srv.ListenAndServe(cfg.Serve.Addr); err != nil {
			logger.Log.Fatal("geometry server", zap.Error(err))
		}
	}
}

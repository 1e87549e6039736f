// meshkit is a CLI for loading, inspecting and converting OBJ meshes.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/engine/lighting"
	"github.com/Faultbox/meshkit/internal/loader"
	"github.com/Faultbox/meshkit/internal/logger"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// usageError reports bad command-line arguments. It is printed without logging.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()
	logger.Debug("configuration loaded",
		zap.String("file", config.ConfigPath()),
		zap.String("mode", cfg.Load.Synthesize),
		zap.Bool("normalize", cfg.Load.Normalize))

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		return 1
	}

	if err := dispatch(cfg, args[0], args[1:]); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.msg)
			return 2
		}
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func dispatch(cfg *config.Config, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(cfg, args)
	case "convert":
		return cmdConvert(cfg, args)
	case "lights":
		return cmdLights(cfg, args)
	case "watch":
		return cmdWatch(cfg, args)
	case "help":
		printUsage()
		return nil
	default:
		return &usageError{msg: fmt.Sprintf("Unknown command: %s (see meshkit help)", command)}
	}
}

func printUsage() {
	fmt.Println(`meshkit - OBJ mesh loader and buffer converter

Usage:
  meshkit [global options] <command> [options]

Commands:
  info <file.obj>                   Show counts, bounds and centroid
  convert [-o dir] <file.obj>...    Write .vbo/.ibo buffers for each mesh
  lights                            Print the packed light and material payload
  watch <file.obj>                  Re-run info whenever the file changes

Global options:
  -config <path>   Config file (.yaml or .toml)
  -debug           Debug logging
  -mode <m>        Channels to synthesize: none, uv, normals, both
  -uv <m>          UV mapping: zero, planar, spherical
  -center <p>      Recenter reference: centroid, bounds
  -encoding <e>    Text encoding when no BOM: utf-8, windows-1252, euc-kr, ...
  -raw             Skip normalization
  -out <dir>       Output directory for convert

Examples:
  meshkit -mode both info bunny.obj
  meshkit convert -o build/meshes models/*.obj
  meshkit -config scene.toml lights`)
}

func loadOptions(cfg *config.Config) (loader.Options, error) {
	opts, err := loader.OptionsFromConfig(cfg.Load)
	if err != nil {
		return loader.Options{}, fmt.Errorf("load options: %w", err)
	}
	return opts, nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return &usageError{msg: "Usage: meshkit info <file.obj>"}
	}

	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	res, err := loader.LoadFile(args[0], opts)
	if err != nil {
		return err
	}
	printInfo(res, opts)
	return nil
}

func printInfo(res *loader.Result, opts loader.Options) {
	mesh := res.Mesh
	bounds := mesh.Extents()
	centroid := mesh.Centroid()

	fmt.Printf("Mesh:       %s\n", res.Path)
	fmt.Printf("Mode:       %s\n", opts.Mode)
	fmt.Printf("Pools:      %d positions, %d normals, %d uvs\n", res.Positions, res.Normals, res.UVs)
	fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Printf("Bounds:     (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
		bounds.Min.X, bounds.Min.Y, bounds.Min.Z, bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
	fmt.Printf("Centroid:   (%.4f, %.4f, %.4f)\n", centroid.X, centroid.Y, centroid.Z)
	if opts.Normalize {
		fmt.Printf("Normalized: yes (center %s)\n", opts.Center)
	} else {
		fmt.Println("Normalized: no")
	}

	if len(res.Skipped) > 0 {
		fmt.Printf("\nSkipped lines (%d):\n", len(res.Skipped))
		for _, s := range res.Skipped {
			fmt.Printf("  %5d  %s\n", s.Line, s.Text)
		}
	}
}

func cmdConvert(cfg *config.Config, args []string) error {
	const usage = "Usage: meshkit convert [-o dir] [-j n] <file.obj>..."

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	outDir := fs.String("o", cfg.Output.Dir, "Output directory")
	workers := fs.Int("j", runtime.NumCPU(), "Files converted in parallel")
	if err := fs.Parse(args); err != nil {
		return &usageError{msg: usage}
	}

	if fs.NArg() < 1 {
		return &usageError{msg: usage}
	}

	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	paths := fs.Args()
	bar := progressbar.Default(int64(len(paths)), "converting")
	defer bar.Close()

	outputs, err := loader.ConvertAll(context.Background(), paths, opts, *outDir, *workers, func(loader.Output) {
		bar.Add(1)
	})
	if err != nil {
		return err
	}
	bar.Finish()

	logger.Sugar.Infof("converted %d meshes into %s", len(outputs), *outDir)
	for _, o := range outputs {
		fmt.Printf("%s -> %s, %s\n", o.Source, o.Vertices, o.Indices)
	}
	return nil
}

func cmdLights(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("lights", flag.ContinueOnError)
	dump := fs.Bool("dump", true, "Print a hex dump of the payload")
	if err := fs.Parse(args); err != nil {
		return &usageError{msg: "Usage: meshkit lights [-dump=false]"}
	}

	lights, err := cfg.Lighting.BuildLights()
	if err != nil {
		return fmt.Errorf("lighting config: %w", err)
	}
	if len(lights) > lighting.MaxLights {
		logger.Warn("too many lights, extra lights dropped",
			zap.Int("configured", len(lights)), zap.Int("max", lighting.MaxLights))
	}

	payload := lighting.PackLights(lights)
	material := cfg.Lighting.Material.Build().Record()

	fmt.Printf("Lights:   %d of %d slots\n", payload.Meta.Count, lighting.MaxLights)
	for i, rec := range payload.Active() {
		fmt.Printf("  [%d] %-11s pos=%v dir=%v\n", i, lighting.LightType(rec.LightType), rec.Position, rec.Direction)
	}
	fmt.Printf("Material: diffuse=%v power=%.1f textures=%d/%d\n",
		material.DiffuseColor, material.SpecularPower, material.UseDiffuseTexture, material.UseSpecularTexture)

	if *dump {
		payloadBytes := payload.Marshal()
		fmt.Printf("\nLight payload (%d bytes):\n%s", len(payloadBytes), hex.Dump(payloadBytes))
		fmt.Printf("\nMaterial record (%d bytes):\n%s", lighting.MaterialRecordSize, hex.Dump(material.Marshal()))
	}
	return nil
}

func cmdWatch(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return &usageError{msg: "Usage: meshkit watch <file.obj>"}
	}

	opts, err := loadOptions(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cache := loader.NewCache(opts)
	logger.Info("watching for changes", zap.String("mesh", args[0]))

	return cache.Watch(ctx, args[0], func(res *loader.Result, err error) {
		if err != nil {
			logger.Warn("reload failed", zap.Error(err))
			return
		}
		fmt.Println()
		printInfo(res, opts)
	})
}

// boxgen generates the forwarding box of a shape package.
//
// Typical use, from a shape package's type.go:
//
//	//go:generate go run ../../cmd/boxgen -type github.com/on-the-ground/higher_ive_go/collection.List
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/on-the-ground/higher_ive_go/internal/boxgen"
)

var (
	typeRef = flag.String("type", "", "Native container to wrap, as <import path>.<Name> (required)")
	shape   = flag.String("shape", "Shape", "Witness type name in the output package")
	boxName = flag.String("box", "box", "Name of the generated box type")
	outFile = flag.String("o", "box_gen.go", "Output file, relative to the current directory")
	verbose = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "boxgen - generate a forwarding box for a shape package\n\n")
		fmt.Fprintf(os.Stderr, "Usage: boxgen -type <import path>.<Name> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	if *typeRef == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	pkgName, pkgPath, err := boxgen.CurrentPackage(".")
	if err != nil {
		return fmt.Errorf("failed to resolve output package: %w", err)
	}
	// go generate knows the package name even before the directory compiles.
	if env := os.Getenv("GOPACKAGE"); env != "" {
		pkgName = env
	}
	logger.Debug("resolved output package", zap.String("name", pkgName), zap.String("path", pkgPath))

	named, err := boxgen.Load(*typeRef)
	if err != nil {
		return err
	}

	src, err := boxgen.Render(named, boxgen.Options{
		Package: pkgName,
		PkgPath: pkgPath,
		Shape:   *shape,
		Box:     *boxName,
	})
	if err != nil {
		return err
	}

	out := filepath.Clean(*outFile)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Info("generated box",
		zap.String("type", *typeRef),
		zap.String("out", out),
		zap.Int("bytes", len(src)),
	)
	return nil
}

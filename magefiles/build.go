//go:build mage

// Package main provides build targets for the bookshop project using Mage.
//
// Usage:
//
//	mage build       Compile bookshop binary to bin/
//	mage test:all    Run all tests
//	mage test:cover  Run tests with a coverage profile
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install bookshop to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "bookshop"
	binaryDir  = "bin"
	cmdDir     = "./cmd/bookshop"
	modulePath = "github.com/mesh-intelligence/bookshop"
)

// Build compiles the bookshop binary to bin/, stamping the version from
// the BOOKSHOP_VERSION environment variable when set.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v"}
	if v := os.Getenv("BOOKSHOP_VERSION"); v != "" {
		args = append(args, "-ldflags", "-X "+modulePath+"/internal/cli.Version="+v)
	}
	args = append(args, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
	return sh.RunV(binGo, args...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type (
	Test  mg.Namespace
	Build mg.Namespace
)

var Aliases = map[string]interface{}{
	"build": Build.Dev,
	"test":  Test.Unit,
}

const binary = "arbor"

func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration runs the testscript scenarios against a real git.
func (Test) Integration() error {
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-tags=integration", "-timeout=300s", "./cmd/arbor/...")
}

func (Test) Coverage() error {
	fmt.Println("Running unit tests with coverage...")

	if err := os.MkdirAll("coverage", 0o755); err != nil {
		return err
	}

	args := []string{"test", "-short", "-coverprofile=coverage/coverage.out", "-coverpkg=./internal/...", "-covermode=atomic"}
	if os.Getenv("CI") != "" {
		args = append(args, "-race")
	}
	args = append(args, "./...")

	if err := sh.RunV("go", args...); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage/coverage.out")
}

func (Build) Dev() error {
	fmt.Println("Building arbor...")
	return sh.RunV("go", "build", "-o", "bin/"+binary, "./cmd/arbor")
}

// Release builds stripped binaries for the supported unix platforms.
func (Build) Release() error {
	for _, target := range []struct{ os, arch string }{
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"darwin", "amd64"},
		{"darwin", "arm64"},
	} {
		output := fmt.Sprintf("bin/%s-%s-%s", binary, target.os, target.arch)
		fmt.Printf("Building %s...\n", output)

		env := map[string]string{
			"GOOS":        target.os,
			"GOARCH":      target.arch,
			"CGO_ENABLED": "0",
		}
		if err := sh.RunWithV(env, "go", "build", "-ldflags", "-s -w", "-o", output, "./cmd/arbor"); err != nil {
			return err
		}
	}
	return nil
}

func Lint() error {
	if os.Getenv("CI") != "" {
		return sh.RunV("golangci-lint", "run")
	}
	return sh.RunV("golangci-lint", "run", "--fix")
}

func CI() error {
	mg.SerialDeps(Clean, Lint, Test.Coverage, Test.Integration, Build.Dev)
	fmt.Println("CI pipeline completed")
	return nil
}

func Clean() error {
	for _, dir := range []string{"coverage", "bin"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return sh.RunV("go", "clean", "-testcache")
}

func Default() error {
	return Test{}.Unit()
}

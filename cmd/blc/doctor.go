package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/syntax"
)

// selfTest is parsed by the doctor command to check the parser.
const selfTest = `PROGRAM SelfTest IS
  INSTRUCTION step IS
    IF next-is-not-wall THEN move ELSE turnleft END IF
  END step
BEGIN
  WHILE true DO step END WHILE
END SelfTest`

// runDoctor checks the environment and returns an exit code.
func runDoctor(tc config.ToolchainConfig) int {
	fmt.Println("BL Toolchain Doctor")
	fmt.Println("===================")
	fmt.Println()

	allOk := true

	// Check Go version
	goVersion := runtime.Version()
	fmt.Printf("Go:      %s", goVersion)
	if ok, err := checkGoVersion(goVersion, tc.GoConstraint); err != nil {
		fmt.Printf(" ✗ (%v)\n", err)
		allOk = false
	} else if ok {
		fmt.Println(" ✓")
	} else {
		fmt.Printf(" ✗ (need %s)\n", tc.GoConstraint)
		allOk = false
	}

	// Check the parser on a known program
	fmt.Printf("parser:  %s", Version)
	if _, err := syntax.Parse("selftest.bl", strings.NewReader(selfTest)); err != nil {
		fmt.Printf(" ✗ (%v)\n", err)
		allOk = false
	} else {
		fmt.Println(" ✓")
	}

	fmt.Println()
	if allOk {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed.")
	return 1
}

// checkGoVersion reports whether a runtime.Version string such as
// "go1.23.3" satisfies constraint.
func checkGoVersion(v, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("bad constraint %q: %v", constraint, err)
	}
	if !strings.HasPrefix(v, "go") {
		return false, fmt.Errorf("unrecognized Go version %q", v)
	}
	sv, err := semver.NewVersion(strings.TrimPrefix(v, "go"))
	if err != nil {
		return false, fmt.Errorf("unrecognized Go version %q", v)
	}
	return c.Check(sv), nil
}

// runDumpConfig prints the effective configuration as TOML.
func runDumpConfig(cfg *config.Config) int {
	if err := cfg.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

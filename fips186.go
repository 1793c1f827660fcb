// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Degroshka/fips186/internal/version"
	"github.com/Degroshka/fips186/prng"
	"github.com/Degroshka/fips186/stattest"
)

var cfg *config

// fipsMain is the real main function for fips186.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func fipsMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	tcfg, _, err := loadConfig(appName)
	if err != nil {
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version at startup.
	fipsLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	// Obtain the bit sequence to operate on, either by loading a previously
	// persisted sequence or by running the generator.
	var sequence string
	if cfg.InFile != "" {
		sequence, err = loadSequence(cfg.InFile)
		if err != nil {
			fipsLog.Errorf("Unable to load sequence: %v", err)
			return err
		}
		fipsLog.Infof("Loaded %d bit sequence from %s", len(sequence),
			cfg.InFile)
	} else {
		sequence, err = generateSequence()
		if err != nil {
			fipsLog.Errorf("Unable to generate sequence: %v", err)
			return err
		}
	}

	// Persist the sequence when requested.  The text form is the sequence
	// written verbatim, the binary form packs 8 bits per byte.
	if cfg.OutFile != "" {
		err := os.WriteFile(cfg.OutFile, []byte(sequence), 0644)
		if err != nil {
			fipsLog.Errorf("Unable to write sequence: %v", err)
			return err
		}
		fipsLog.Infof("Wrote sequence text to %s", cfg.OutFile)
	}
	if cfg.BinFile != "" {
		packed, err := prng.PackBits(sequence)
		if err != nil {
			fipsLog.Errorf("Unable to pack sequence: %v", err)
			return err
		}
		err = os.WriteFile(cfg.BinFile, packed, 0644)
		if err != nil {
			fipsLog.Errorf("Unable to write packed sequence: %v", err)
			return err
		}
		fipsLog.Infof("Wrote %d packed bytes to %s", len(packed),
			cfg.BinFile)
	}

	// Run the statistical tests when requested.  Loading an existing
	// sequence implies testing since there is nothing else to do with it.
	if cfg.RunTests || cfg.InFile != "" {
		if err := runStatTests(sequence); err != nil {
			return err
		}
	}

	return nil
}

// generateSequence creates a generator per the active config and generates
// the requested number of bits.
func generateSequence() (string, error) {
	// An explicitly configured seed replaces the system entropy source so
	// runs can be reproduced.
	var entropy io.Reader
	if cfg.Seed != "" {
		seedBytes, err := hex.DecodeString(strings.Join(strings.Fields(cfg.Seed), ""))
		if err != nil {
			return "", fmt.Errorf("invalid seed: %w", err)
		}
		fipsLog.Warnf("Using a fixed %d byte seed -- the output stream is "+
			"deterministic", len(seedBytes))
		entropy = bytes.NewReader(seedBytes)
	}

	gen, err := prng.NewGenerator(cfg.SeedBits, cfg.AuxWord, entropy)
	if err != nil {
		return "", err
	}
	sequence := gen.Generate(cfg.Count)
	fipsLog.Infof("Generated %d bits with a %d bit seed", len(sequence),
		cfg.SeedBits)
	return sequence, nil
}

// loadSequence reads a persisted bit sequence from the provided file.
// Surrounding whitespace is tolerated, the sequence itself is validated by
// the statistical tests.
func loadSequence(name string) (string, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// verdict converts a pass flag into its report string.
func verdict(pass bool) string {
	if pass {
		return "passed"
	}
	return "failed"
}

// runStatTests runs each statistical test against the sequence and logs the
// resulting reports.  Degenerate sequences are reported as inconclusive
// rather than treated as hard failures.
func runStatTests(sequence string) error {
	freq, err := stattest.Frequency(sequence)
	if err != nil {
		statLog.Errorf("Frequency test: %v", err)
		return err
	}
	statLog.Infof("Frequency test: n=%d Sn=%d S=%.8f threshold=%.8f -- %s",
		freq.N, freq.Sum, freq.Statistic, freq.Threshold, verdict(freq.Pass))

	runs, err := stattest.Runs(sequence)
	switch {
	case errors.Is(err, stattest.ErrDegenerateSequence):
		statLog.Warnf("Runs test inconclusive: %v", err)
	case err != nil:
		statLog.Errorf("Runs test: %v", err)
		return err
	default:
		statLog.Infof("Runs test: n=%d pi=%.8f v=%d expected=%.2f S=%.8f "+
			"threshold=%.8f -- %s", runs.N, runs.Proportion, runs.RunCount,
			runs.ExpectedRuns, runs.Statistic, runs.Threshold,
			verdict(runs.Pass))
	}

	cusum, err := stattest.CumulativeSums(sequence)
	switch {
	case errors.Is(err, stattest.ErrDegenerateSequence):
		statLog.Warnf("Cumulative sums test inconclusive: %v", err)
	case err != nil:
		statLog.Errorf("Cumulative sums test: %v", err)
		return err
	default:
		for _, state := range cusum.States {
			statLog.Debugf("Cumulative sums state %3d: visits=%5d "+
				"V=%.8f -- %s", state.State, state.Visits, state.Statistic,
				verdict(state.Pass))
		}
		statLog.Infof("Cumulative sums test: n=%d states=%d "+
			"threshold=%.8f -- %s", cusum.N, len(cusum.States),
			cusum.Threshold, verdict(cusum.Pass))
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := fipsMain(); err != nil {
		os.Exit(1)
	}
}

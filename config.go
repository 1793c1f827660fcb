// Copyright (c) 2025-2026 The fips186 developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Degroshka/fips186/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultSeedBits    = 160
	defaultAuxWord     = "67452301 efcdab89 98badcfe 10325476 c3d2e1f0"
	defaultBitCount    = 1000
	defaultLogDirname  = "logs"
	defaultLogFilename = "fips186.log"
	defaultDebugLevel  = "info"
)

// config defines the configuration options for the fips186 command.
//
// See loadConfig for details on the configuration load process.
type config struct {
	SeedBits      int    `short:"b" long:"seedbits" description:"Seed size in bits (160 through 512)"`
	AuxWord       string `short:"t" long:"auxword" description:"160-bit auxiliary word as hexadecimal text; whitespace is ignored"`
	Count         int    `short:"n" long:"count" description:"Number of keystream bits to generate"`
	Seed          string `long:"seed" description:"Hex-encoded bytes used to seed the accumulator instead of system entropy; the resulting stream is deterministic and MUST NOT be used for anything but testing"`
	OutFile       string `short:"o" long:"outfile" description:"Write the generated bit sequence verbatim as text to the given file"`
	BinFile       string `long:"binfile" description:"Write the generated bit sequence packed into bytes to the given file"`
	RunTests      bool   `long:"runtests" description:"Run the statistical tests against the sequence"`
	InFile        string `short:"i" long:"infile" description:"Read an existing bit sequence from the given file and only run the statistical tests"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// errSuppressUsage signifies that an error that happened while parsing the
// config options should not cause the usage message to be shown.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// loadConfig initializes and parses the config using command line options.
//
// The above results in the fips186 command functioning properly without any
// config settings while still allowing the user to override settings with
// command line options.  Command line options always take precedence.
//
// This function also initializes logging and configures it accordingly.
func loadConfig(appName string) (*config, []string, error) {
	// Default config.
	cfg := config{
		SeedBits:   defaultSeedBits,
		AuxWord:    defaultAuxWord,
		Count:      defaultBitCount,
		LogDir:     defaultLogDirname,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, errSuppressUsage(err.Error())
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		str := "%s: %v"
		return nil, nil, errSuppressUsage(fmt.Sprintf(str, appName, err))
	}

	// The requested bit count must be positive.  The remaining generator
	// parameters are validated by the core when the generator is created.
	if cfg.Count < 1 {
		str := "%s: the count option must be a positive number -- parsed [%d]"
		return nil, nil, errSuppressUsage(fmt.Sprintf(str, appName, cfg.Count))
	}

	return &cfg, remainingArgs, nil
}

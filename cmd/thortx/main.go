// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/thortx"
	"github.com/urfave/cli/v2"
)

type globalFlags struct {
	network   string
	chainTag  uint
	logLevel  string
	logFormat string
}

type app struct {
	flags  globalFlags
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {
	a := &app{
		logger: slog.Default(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	return &cli.App{
		Name:      "thortx",
		Usage:     "build, sign and inspect fee-delegated transactions",
		UsageText: "thortx [global flags] <command> [flags]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "network",
				Usage:       "named network that provides the default chain tag (main, test, solo)",
				Value:       thortx.NetworkMainnet.Name,
				EnvVars:     []string{"THORTX_NETWORK"},
				Destination: &a.flags.network,
			},
			&cli.UintFlag{
				Name:        "chain-tag",
				Usage:       "chain tag to use. this overrides the -network option",
				EnvVars:     []string{"THORTX_CHAIN_TAG"},
				Destination: &a.flags.chainTag,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "info",
				EnvVars:     []string{"THORTX_LOG_LEVEL"},
				Destination: &a.flags.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json)",
				Value:       "text",
				EnvVars:     []string{"THORTX_LOG_FORMAT"},
				Destination: &a.flags.logFormat,
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.gasCommand(),
			a.hashCommand(),
			a.encodeCommand(),
			a.decodeCommand(),
			a.dumpCommand(),
			a.signCommand(),
		},
	}
}

func (a *app) setup(cCtx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.flags.logLevel)); err != nil {
		return fmt.Errorf("invalid log level: %s", a.flags.logLevel)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(a.flags.logFormat) {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(a.stderr, handlerOpts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.stderr, handlerOpts))
	default:
		return fmt.Errorf("invalid log format: %s", a.flags.logFormat)
	}
	a.logger = a.logger.With("component", "thortx")
	return nil
}

// resolveChainTag returns the chain tag selected by the global flags
func (a *app) resolveChainTag() (uint8, error) {
	if a.flags.chainTag > 0 {
		if a.flags.chainTag > 0xff {
			return 0, fmt.Errorf("chain tag out of range: %d", a.flags.chainTag)
		}
		return uint8(a.flags.chainTag), nil
	}
	network := thortx.NetworkByName(a.flags.network)
	if network == thortx.NetworkInvalid {
		return 0, fmt.Errorf("invalid network specified: %s", a.flags.network)
	}
	return network.ChainTag(), nil
}

func main() {
	cliApp := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

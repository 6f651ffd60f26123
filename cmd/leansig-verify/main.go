// Command leansig-verify checks a leanSig signature test vector.
//
// The input file holds one hex-encoded (0x-prefixed) wire-format
// VerifyInput as produced by the codec package or the leansig-testgen
// tool. The exit code reports the decision: 0 accept, 1 reject,
// 2 usage or I/O failure.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/leansig/leansig-go/codec"
	"github.com/leansig/leansig-go/log"
	"github.com/leansig/leansig-go/xmss"
)

// Exit codes.
const (
	exitAccept = 0
	exitReject = 1
	exitUsage  = 2
)

type config struct {
	InputPath string
	Verbosity int
}

// parseFlags parses the command line. It returns the configuration, an
// exit flag, and the code to exit with when the flag is set.
func parseFlags(args []string) (config, bool, int) {
	var cfg config

	fs := flag.NewFlagSet("leansig-verify", flag.ContinueOnError)
	fs.StringVar(&cfg.InputPath, "input", "", "path to a hex-encoded verify-input vector file")
	fs.IntVar(&cfg.Verbosity, "verbosity", 3, "log verbosity (0=error .. 4=debug)")

	if err := fs.Parse(args); err != nil {
		return cfg, true, exitUsage
	}
	if cfg.InputPath == "" {
		fmt.Fprintln(os.Stderr, "leansig-verify: -input is required")
		fs.Usage()
		return cfg, true, exitUsage
	}
	return cfg, false, 0
}

func run(cfg config) int {
	log.SetDefault(log.New(log.VerbosityLevel(cfg.Verbosity)))
	logger := log.Default().Module("verify")

	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		logger.Error("cannot read input", "path", cfg.InputPath, "err", err)
		return exitUsage
	}

	data, err := hexutil.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		logger.Error("input is not valid hex", "path", cfg.InputPath, "err", err)
		return exitUsage
	}

	input, err := codec.DecodeVerifyInput(data)
	if err != nil {
		logger.Error("input does not decode", "path", cfg.InputPath, "err", err)
		return exitUsage
	}

	logger.Debug("vector decoded", "epoch", input.Epoch, "bytes", len(data))

	if err := xmss.Check(&input.PublicKey, &input.Signature, input.Message, input.Epoch); err != nil {
		logger.Info("signature rejected", "epoch", input.Epoch, "reason", err)
		return exitReject
	}
	logger.Info("signature accepted", "epoch", input.Epoch)
	return exitAccept
}

func main() {
	cfg, exit, code := parseFlags(os.Args[1:])
	if exit {
		os.Exit(code)
	}
	os.Exit(run(cfg))
}

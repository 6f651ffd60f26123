// Command leansig-testgen writes a synthetic leanSig verify-input vector
// file for exercising the wire format and the verification code path.
//
// The generated data is structurally valid but not honestly signed, so
// leansig-verify is expected to reject it; the tool exists to produce
// deterministic, well-formed fixtures without a signer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/leansig/leansig-go/codec"
	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/log"
	"github.com/leansig/leansig-go/xmss"
)

type config struct {
	OutputPath string
	Epoch      uint
	Verbosity  int
}

// parseFlags parses the command line. It returns the configuration, an
// exit flag, and the code to exit with when the flag is set.
func parseFlags(args []string) (config, bool, int) {
	var cfg config

	fs := flag.NewFlagSet("leansig-testgen", flag.ContinueOnError)
	fs.StringVar(&cfg.OutputPath, "output", "", "path to write the hex-encoded vector file")
	fs.UintVar(&cfg.Epoch, "epoch", 0, "epoch to embed in the vector")
	fs.IntVar(&cfg.Verbosity, "verbosity", 3, "log verbosity (0=error .. 4=debug)")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}
	if cfg.OutputPath == "" {
		fmt.Fprintln(os.Stderr, "leansig-testgen: -output is required")
		fs.Usage()
		return cfg, true, 2
	}
	if cfg.Epoch >= 1<<xmss.TreeHeight {
		fmt.Fprintf(os.Stderr, "leansig-testgen: epoch %d outside key lifetime\n", cfg.Epoch)
		return cfg, true, 2
	}
	return cfg, false, 0
}

// generateInput builds the deterministic synthetic vector for one epoch.
func generateInput(epoch uint32) *xmss.VerifyInput {
	var in xmss.VerifyInput
	in.Epoch = epoch

	for i := range in.PublicKey.Root {
		in.PublicKey.Root[i] = koalabear.New(uint32(i) + 100)
	}
	for i := range in.PublicKey.Parameter {
		in.PublicKey.Parameter[i] = koalabear.New(uint32(i) + 200)
	}
	for i := range in.Message {
		in.Message[i] = byte(i + 1)
	}

	sig := &in.Signature
	for i := range sig.Rho {
		sig.Rho[i] = koalabear.New(uint32(i) + 300)
	}
	sig.Path = make([]xmss.Domain, xmss.TreeHeight)
	for level := range sig.Path {
		for i := range sig.Path[level] {
			sig.Path[level][i] = koalabear.New(uint32(level*xmss.HashLen+i) + 1000)
		}
	}
	sig.Hashes = make([]xmss.Domain, xmss.NumChains)
	for c := range sig.Hashes {
		for i := range sig.Hashes[c] {
			sig.Hashes[c][i] = koalabear.New(uint32(c*xmss.HashLen+i) + 5000)
		}
	}
	sig.LeafIndex = epoch
	return &in
}

func run(cfg config) int {
	log.SetDefault(log.New(log.VerbosityLevel(cfg.Verbosity)))
	logger := log.Default().Module("testgen")

	input := generateInput(uint32(cfg.Epoch))
	data, err := codec.EncodeVerifyInput(input)
	if err != nil {
		logger.Error("cannot encode vector", "err", err)
		return 1
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(hexutil.Encode(data)+"\n"), 0o644); err != nil {
		logger.Error("cannot write output", "path", cfg.OutputPath, "err", err)
		return 1
	}

	logger.Info("vector written", "path", cfg.OutputPath, "epoch", cfg.Epoch, "bytes", len(data))
	return 0
}

func main() {
	cfg, exit, code := parseFlags(os.Args[1:])
	if exit {
		os.Exit(code)
	}
	os.Exit(run(cfg))
}

// Command forasprove runs the saturation search over a single problem
// file and reports the outcome, grounded on the original implementation's
// regression_worker binary and its exit-code contract.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/foras/input"
	"github.com/xDarkicex/foras/prover"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: forasprove <input-file> [timeout-seconds]")
		return 2
	}
	inputPath := args[0]
	timeoutSecs := 0
	if len(args) > 1 {
		if _, err := fmt.Sscanf(args[1], "%d", &timeoutSecs); err != nil {
			fmt.Fprintf(os.Stderr, "usage: forasprove <input-file> [timeout-seconds]: %v\n", err)
			return 2
		}
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to read input file: %v\n", err)
		return 3
	}

	file, err := input.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "PARSE_ERROR: %v\n", err)
		return 3
	}

	p, err := input.BuildProver(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "BUILD_ERROR: %v\n", err)
		return 4
	}

	ctx := context.Background()
	if timeoutSecs > 0 {
		cfg := p.Config()
		cfg.MaxSeconds = timeoutSecs
		p.SetConfig(cfg)

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
		defer cancel()
	}

	result := p.Search(ctx)

	logrus.WithFields(logrus.Fields{
		"result":            result.Kind,
		"clauses_generated": result.Stats.ClausesGenerated,
		"clauses_kept":      result.Stats.ClausesKept,
		"clauses_given":     result.Stats.GivenCount,
	}).Info("search finished")

	fmt.Printf("RESULT: %s\n", result.Kind)
	fmt.Printf("CLAUSES_GENERATED: %d\n", result.Stats.ClausesGenerated)
	fmt.Printf("CLAUSES_KEPT: %d\n", result.Stats.ClausesKept)
	fmt.Printf("CLAUSES_GIVEN: %d\n", result.Stats.GivenCount)
	fmt.Printf("PROOF_FOUND: %t\n", result.Kind == prover.KindProof)
	if result.Kind == prover.KindResourceLimit {
		fmt.Printf("LIMIT_REASON: %s\n", result.LimitReason)
	}

	return 0
}

// Command tracker prints summaries for sensor packages given on the command line,
// or for the built-in demo packages when none are given.
//
//	tracker SWM:720,1,80,25,40 RUN:15000,1,75
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"example.com/fittracker/internal/observability"
	"example.com/fittracker/internal/workout"
)

var demoPackages = []workout.Package{
	{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Params: []float64{15000, 1, 75}},
	{Code: "WLK", Params: []float64{9000, 1, 75, 180}},
}

func main() {
	logger := log.New(os.Stderr, "[tracker] ", log.LstdFlags)

	packages := demoPackages
	if len(os.Args) > 1 {
		parsed, err := parsePackages(os.Args[1:])
		if err != nil {
			logger.Fatalf("invalid arguments: %v", err)
		}
		packages = parsed
	}

	if failed := run(os.Stdout, logger, packages); failed > 0 {
		os.Exit(1)
	}
}

// run prints one line per valid package, logs the rest, and returns the failure count.
func run(out io.Writer, logger *log.Logger, packages []workout.Package) int {
	failed := 0
	for _, pkg := range packages {
		summary, err := workout.Summarize(pkg)
		if err != nil {
			failed++
			logger.Printf("skipping %s %v (%s): %v", pkg.Code, pkg.Params, observability.Reason(err), err)
			continue
		}
		fmt.Fprintln(out, summary.Message())
	}
	return failed
}

func parsePackages(args []string) ([]workout.Package, error) {
	packages := make([]workout.Package, 0, len(args))
	for _, arg := range args {
		code, rawParams, ok := strings.Cut(arg, ":")
		if !ok || code == "" {
			return nil, fmt.Errorf("%q: expected CODE:p1,p2,...", arg)
		}
		var params []float64
		for _, raw := range strings.Split(rawParams, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", arg, err)
			}
			params = append(params, v)
		}
		packages = append(packages, workout.Package{Code: strings.ToUpper(code), Params: params})
	}
	return packages, nil
}

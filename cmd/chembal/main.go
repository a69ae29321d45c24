// SPDX-License-Identifier: MIT

// Command chembal balances chemical equations typed on standard input.
//
// Usage:
//
//	chembal                         # interactive prompt, one equation per line
//	chembal -e "Fe + O2 -> Fe2O3"   # balance one equation and exit
//	chembal -v -bound 30            # print the full diagnostic report
//	chembal -config chembal.yaml    # load settings from YAML
//
// Exit status is 0 on success, 1 when the last equation failed to parse or
// balance, 2 on usage or configuration errors.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/katalvlaran/chembal/balance"
)

const (
	banner     = "=== CHEMICAL EQUATION BALANCER ==="
	prompt     = "\nEnter the equation: "
	inputHint  = "Check that the equation was typed correctly (e.g. H2 + O2 -> H2O)."
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("chembal: ")

	var (
		configPath = flag.String("config", "", "YAML config file (max_bound, arrows, joiner, verbose)")
		bound      = flag.Int("bound", 0, "largest coefficient to try (overrides config; default 20)")
		verbose    = flag.Bool("v", false, "print compound analysis and balance matrix")
		expr       = flag.String("e", "", "balance this equation and exit")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Print(err)
			os.Exit(exitUsage)
		}
	}
	if *bound != 0 {
		cfg.MaxBound = *bound
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		log.Print(err)
		os.Exit(exitUsage)
	}

	if *expr != "" {
		if !balanceLine(os.Stdout, *expr, cfg) {
			os.Exit(exitFailed)
		}

		return
	}
	os.Exit(runPrompt(os.Stdin, os.Stdout, cfg))
}

// runPrompt reads equations line by line until EOF. Every line is handled
// independently; the exit code reflects the last non-blank line.
func runPrompt(in io.Reader, out io.Writer, cfg Config) int {
	fmt.Fprintln(out, banner)

	code := exitOK
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			code = exitOK
			if !balanceLine(out, line, cfg) {
				code = exitFailed
			}
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	if err := sc.Err(); err != nil {
		log.Printf("read input: %v", err)

		return exitFailed
	}

	return code
}

// balanceLine balances one equation and prints the outcome. It reports
// whether a balanced equation was printed. Panics are recovered and logged
// with a stack trace so that one bad line never ends the session silently.
func balanceLine(out io.Writer, line string, cfg Config) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("unexpected failure on %q: %v\n%s", line, rec, debug.Stack())
			fmt.Fprintln(out, "Error: unexpected internal failure.")
			ok = false
		}
	}()

	res, err := balance.Balance(line, cfg.Options()...)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintln(out, inputHint)

		return false
	}

	if cfg.Verbose {
		fmt.Fprintln(out)
		if err = res.WriteReport(out); err != nil {
			log.Printf("write report: %v", err)
		}

		return res.Found()
	}

	if !res.Found() {
		for _, l := range balance.NotFoundHint {
			fmt.Fprintln(out, l)
		}

		return false
	}
	fmt.Fprintln(out, res.Equation())
	fmt.Fprint(out, res.Table())

	return true
}

// Command staticlint bundles the project's analyzers into one multichecker:
// correctness passes from x/tools and staticcheck, plus a couple of style
// checks. The advisory invocation in the README ignores its exit status; the
// build-breaking pass is `go vet`.
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func main() {
	checks := []*analysis.Analyzer{
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		structtag.Analyzer,
		unreachable.Analyzer,
	}
	for _, v := range staticcheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	// Style checks: error construction and receiver-name consistency.
	for _, v := range simple.Analyzers {
		if v.Analyzer.Name == "S1028" {
			checks = append(checks, v.Analyzer)
		}
	}
	for _, v := range stylecheck.Analyzers {
		if v.Analyzer.Name == "ST1016" {
			checks = append(checks, v.Analyzer)
		}
	}

	multichecker.Main(checks...)
}

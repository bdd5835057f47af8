package main

import (
	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// selected are the checks taken from the simple, stylecheck and quickfix sets.
// All staticcheck SA checks are enabled.
var selected = map[string]bool{
	"S1000":  true,
	"S1001":  true,
	"S1002":  true,
	"ST1003": true,
	"ST1005": true,
	"ST1013": true,
	"QF1001": true,
	"QF1002": true,
	"QF1011": true,
}

func checks() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilfunc.Analyzer,
		bodyclose.Analyzer,
		analyzer.Analyzer,
		osExitCheck,
		zerologMsgCheck,
	}

	for _, v := range staticcheck.Analyzers {
		list = append(list, v.Analyzer)
	}

	list = appendSelected(list, simple.Analyzers)
	list = appendSelected(list, stylecheck.Analyzers)
	list = appendSelected(list, quickfix.Analyzers)

	return list
}

func appendSelected(list []*analysis.Analyzer, from []*lint.Analyzer) []*analysis.Analyzer {
	for _, v := range from {
		if selected[v.Analyzer.Name] {
			list = append(list, v.Analyzer)
		}
	}

	return list
}

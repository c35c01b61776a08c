package nopanic

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is a static analysis tool that reports calls to the builtin
// panic outside package main. Library code in this project must return
// typed errors to the caller; no failure is allowed to take the process
// down from inside a package.
var Analyzer = &analysis.Analyzer{
	Name: "nopanic",
	Doc:  "prohibits use of the builtin panic outside package main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		filename := pass.Fset.File(file.Pos()).Name()
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			ident, ok := call.Fun.(*ast.Ident)
			if ok && ident.Name == "panic" {
				pass.Reportf(call.Pos(), "avoid panic in library code, return an error instead")
			}

			return true
		})
	}

	return nil, nil
}

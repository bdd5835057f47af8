package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const osExitDoc = `osExitCheck checks for calls to os.Exit in the main function of
a main package. The call terminates the program immediately and deferred
functions, e.g. the server shutdown, never run.`

var osExitCheck = &analysis.Analyzer{
	Name: "osExitCheck",
	Doc:  osExitDoc,
	Run:  runOSExit,
}

func runOSExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, f := range pass.Files {
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				// closures may run after main returns
				if _, ok := n.(*ast.FuncLit); ok {
					return false
				}

				call, ok := n.(*ast.CallExpr)
				if ok && isOSExit(pass, call) {
					pass.Reportf(call.Pos(), "os.Exit should not be called in main function")
				}

				return true
			})
		}
	}

	return nil, nil
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const zerologPkg = "github.com/rs/zerolog"

const zerologMsgDoc = `zerologMsgCheck reports zerolog events that are built but never sent.
An event chain such as log.Error().Err(err) writes nothing until it ends
with Msg, Msgf, MsgFunc or Send.`

var zerologMsgCheck = &analysis.Analyzer{
	Name: "zerologMsgCheck",
	Doc:  zerologMsgDoc,
	Run:  runZerologMsg,
}

func runZerologMsg(pass *analysis.Pass) (any, error) {
	for _, f := range pass.Files {
		ast.Inspect(f, func(n ast.Node) bool {
			stmt, ok := n.(*ast.ExprStmt)
			if !ok {
				return true
			}

			call, ok := stmt.X.(*ast.CallExpr)
			if ok && isZerologEvent(pass.TypesInfo.TypeOf(call)) {
				pass.Reportf(call.Pos(), "zerolog event is never sent, finish it with Msg or Send")
			}

			return true
		})
	}

	return nil, nil
}

func isZerologEvent(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == zerologPkg && obj.Name() == "Event"
}

// Command writepath reports whether services write through aggregates only. It parses
// internal/services and flags any service method that calls a repo write method directly.
// Exit status is 1 when such a call site exists.
package main

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var repoWriteMethods = map[string]bool{
	"Create":        true,
	"FindOrCreate":  true,
	"UpdateDetails": true,
	"UpdateByID":    true,
	"SetSlot":       true,
	"Delete":        true,
}

var aggregateWriteMethods = map[string]bool{
	"Upsert": true,
}

type methodStats struct {
	Struct          string   `json:"struct"`
	Method          string   `json:"method"`
	File            string   `json:"file"`
	Line            int      `json:"line"`
	RepoWrites      []string `json:"repo_writes,omitempty"`
	AggregateWrites []string `json:"aggregate_writes,omitempty"`
}

type report struct {
	RepoWriteCallsites      int           `json:"repo_write_callsites"`
	AggregateWriteCallsites int           `json:"aggregate_write_callsites"`
	Residual                []methodStats `json:"residual,omitempty"`
	Methods                 []methodStats `json:"methods"`
}

// fieldKinds maps struct name -> field name -> "repo" | "aggregate".
type fieldKinds map[string]map[string]string

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	rep, err := audit(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(rep, "", "  ")
	fmt.Println(string(out))
	if rep.RepoWriteCallsites > 0 {
		os.Exit(1)
	}
}

func audit(root string) (report, error) {
	dir := filepath.Join(root, "internal", "services")
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	if err != nil {
		return report{}, fmt.Errorf("parse %s: %w", dir, err)
	}
	pkg, ok := pkgs["services"]
	if !ok {
		return report{}, fmt.Errorf("services package not found in %s", dir)
	}

	kinds := fieldKinds{}
	for _, f := range pkg.Files {
		collectFields(f, kinds)
	}

	var rep report
	for path, f := range pkg.Files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		for _, m := range collectMethods(fset, f, filepath.ToSlash(rel), kinds) {
			rep.RepoWriteCallsites += len(m.RepoWrites)
			rep.AggregateWriteCallsites += len(m.AggregateWrites)
			if len(m.RepoWrites) > 0 {
				rep.Residual = append(rep.Residual, m)
			}
			rep.Methods = append(rep.Methods, m)
		}
	}
	sort.Slice(rep.Methods, func(i, j int) bool {
		if rep.Methods[i].File == rep.Methods[j].File {
			return rep.Methods[i].Line < rep.Methods[j].Line
		}
		return rep.Methods[i].File < rep.Methods[j].File
	})
	return rep, nil
}

func collectFields(file *ast.File, out fieldKinds) {
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return false
		}
		fields := map[string]string{}
		for _, field := range st.Fields.List {
			sel, ok := field.Type.(*ast.SelectorExpr)
			if !ok || len(field.Names) == 0 {
				continue
			}
			pkgIdent, ok := sel.X.(*ast.Ident)
			if !ok {
				continue
			}
			var kind string
			switch {
			case pkgIdent.Name == "repos" && strings.HasSuffix(sel.Sel.Name, "Repo"):
				kind = "repo"
			case pkgIdent.Name == "domainagg" && strings.HasSuffix(sel.Sel.Name, "Aggregate"):
				kind = "aggregate"
			default:
				continue
			}
			for _, name := range field.Names {
				fields[name.Name] = kind
			}
		}
		if len(fields) > 0 {
			out[ts.Name.Name] = fields
		}
		return false
	})
}

func collectMethods(fset *token.FileSet, file *ast.File, rel string, kinds fieldKinds) []methodStats {
	var out []methodStats
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || fd.Body == nil {
			continue
		}
		recvName, recvType := receiver(fd.Recv.List[0])
		fields, ok := kinds[recvType]
		if !ok || recvName == "" {
			continue
		}
		m := methodStats{
			Struct: recvType,
			Method: fd.Name.Name,
			File:   rel,
			Line:   fset.Position(fd.Pos()).Line,
		}
		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			fn, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			recvField, ok := fn.X.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			base, ok := recvField.X.(*ast.Ident)
			if !ok || base.Name != recvName {
				return true
			}
			site := recvField.Sel.Name + "." + fn.Sel.Name
			switch fields[recvField.Sel.Name] {
			case "repo":
				if repoWriteMethods[fn.Sel.Name] {
					m.RepoWrites = append(m.RepoWrites, site)
				}
			case "aggregate":
				if aggregateWriteMethods[fn.Sel.Name] {
					m.AggregateWrites = append(m.AggregateWrites, site)
				}
			}
			return true
		})
		out = append(out, m)
	}
	return out
}

func receiver(field *ast.Field) (string, string) {
	if len(field.Names) == 0 {
		return "", ""
	}
	switch t := field.Type.(type) {
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return field.Names[0].Name, id.Name
		}
	case *ast.Ident:
		return field.Names[0].Name, t.Name
	}
	return "", ""
}

package compiler

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// discoverComponents finds every *.gt.html template in the packages under rootDir
// and inspects the Go struct it belongs to.
func (c *Compiler) discoverComponents(rootDir string) ([]componentInfo, error) {
	// Components are built for the browser, so load packages the way GOOS=js sees them.
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  rootDir,
		Env:  append(os.Environ(), "GOOS=js", "GOARCH=wasm"),
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var components []componentInfo
	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}
		packageDir := filepath.Dir(pkg.GoFiles[0])

		files, err := os.ReadDir(packageDir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", packageDir, err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), templateSuffix) {
				continue
			}

			pascalName := strings.TrimSuffix(file.Name(), templateSuffix)
			goPath := filepath.Join(packageDir, strings.ToLower(pascalName)+".go")
			schema, err := inspectGoFile(goPath, pascalName)
			if err != nil {
				return nil, fmt.Errorf("inspect %s: %w", goPath, err)
			}

			components = append(components, componentInfo{
				Path:          filepath.Join(packageDir, file.Name()),
				GoPath:        goPath,
				PascalName:    pascalName,
				LowercaseName: strings.ToLower(pascalName),
				PackageName:   pkg.Name,
				ImportPath:    pkg.PkgPath,
				Schema:        schema,
			})
		}
	}
	return components, nil
}

func inspectGoFile(path, structName string) (componentSchema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return componentSchema{}, err
	}
	return inspectGoSource(path, src, structName)
}

// inspectGoSource extracts the bindable fields and the methods of structName.
func inspectGoSource(filename string, src []byte, structName string) (componentSchema, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return componentSchema{}, err
	}

	structs := make(map[string]*ast.StructType)
	methods := make(map[string]methodDescriptor)
	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.TypeSpec:
			if st, ok := decl.Type.(*ast.StructType); ok {
				structs[decl.Name.Name] = st
			}
		case *ast.FuncDecl:
			if receiverName(decl) == structName && decl.Name.IsExported() {
				methods[decl.Name.Name] = methodDescriptor{
					Name:    decl.Name.Name,
					Params:  extractParams(decl.Type.Params),
					Returns: extractReturns(decl.Type.Results),
				}
			}
		}
		return true
	})

	component, ok := structs[structName]
	if !ok {
		return componentSchema{}, fmt.Errorf("struct %q not found", structName)
	}

	schema := componentSchema{
		Fields:  exportedFields(component),
		Methods: methods,
	}

	// A State() snapshot method takes over data binding from the struct fields.
	if state, ok := methods["State"]; ok && len(state.Params) == 0 && len(state.Returns) == 1 {
		if st, ok := structs[state.Returns[0]]; ok {
			schema.StateType = state.Returns[0]
			schema.Fields = exportedFields(st)
		}
	}
	return schema, nil
}

func receiverName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	recv := decl.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	if ident, ok := recv.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func exportedFields(st *ast.StructType) map[string]propertyDescriptor {
	fields := make(map[string]propertyDescriptor)
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			lower := strings.ToLower(name.Name)
			fields[lower] = propertyDescriptor{
				Name:          name.Name,
				LowercaseName: lower,
				GoType:        extractTypeName(field.Type),
			}
		}
	}
	return fields
}

// extractTypeName renders a type expression the way it is spelled in source.
func extractTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.ArrayType:
		return "[]" + extractTypeName(t.Elt)
	case *ast.StarExpr:
		return "*" + extractTypeName(t.X)
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name + "." + t.Sel.Name
		}
	case *ast.FuncType:
		return "func"
	}
	return "unknown"
}

func extractParams(fields *ast.FieldList) []paramDescriptor {
	if fields == nil {
		return nil
	}
	var params []paramDescriptor
	for _, field := range fields.List {
		typeName := extractTypeName(field.Type)
		if len(field.Names) == 0 {
			params = append(params, paramDescriptor{Type: typeName})
			continue
		}
		for _, name := range field.Names {
			params = append(params, paramDescriptor{Name: name.Name, Type: typeName})
		}
	}
	return params
}

func extractReturns(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var returns []string
	for _, field := range fields.List {
		typeName := extractTypeName(field.Type)
		for range max(len(field.Names), 1) {
			returns = append(returns, typeName)
		}
	}
	return returns
}

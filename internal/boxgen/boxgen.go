// Package boxgen renders forwarding boxes for shape packages.
//
// A box makes a native container satisfy its shape interface without
// touching the container's type: it embeds hkt.Kind and forwards every
// exported method to the container it owns. Writing these by hand is
// mechanical and easy to get incomplete, so they are generated.
package boxgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

const hktPath = "github.com/on-the-ground/higher_ive_go/hkt"

var (
	ErrBadTypeRef  = errors.New("type reference must look like <import path>.<Name>")
	ErrNotFound    = errors.New("type not found")
	ErrNotGeneric  = errors.New("type has no element type parameter")
	ErrNoMethods   = errors.New("type has no exported methods to forward")
	ErrLoadFailure = errors.New("package failed to load")
)

// Options controls the rendered file.
type Options struct {
	// Package is the output package name.
	Package string
	// PkgPath is the output import path; its own identifiers stay unqualified.
	PkgPath string
	// Shape is the witness type name, resolved in the output package.
	Shape string
	// Box is the name of the generated type.
	Box string
}

// Load resolves a reference such as
// "github.com/on-the-ground/higher_ive_go/collection.List".
func Load(typeRef string) (*types.Named, error) {
	i := strings.LastIndex(typeRef, ".")
	if i <= 0 || i == len(typeRef)-1 {
		return nil, fmt.Errorf("%w: %q", ErrBadTypeRef, typeRef)
	}
	path, name := typeRef[:i], typeRef[i+1:]

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w: %s matched %d packages", ErrLoadFailure, path, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailure, path, pkg.Errors[0])
	}

	tn, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, path)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a named type", ErrNotFound, typeRef)
	}
	return named, nil
}

// CurrentPackage returns the name and import path of the package in dir.
func CurrentPackage(dir string) (name, path string, err error) {
	cfg := &packages.Config{Mode: packages.NeedName, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", "", fmt.Errorf("failed to load %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return "", "", fmt.Errorf("%w: %s matched %d packages", ErrLoadFailure, dir, len(pkgs))
	}
	return pkgs[0].Name, pkgs[0].PkgPath, nil
}

// Render produces the gofmt'ed source of a box for named.
//
// The first type parameter of named is taken as the element type. Methods
// are emitted sorted by name: the interface method set for interface types,
// the declared exported methods otherwise.
func Render(named *types.Named, opts Options) ([]byte, error) {
	tparams := named.TypeParams()
	if tparams.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotGeneric, named.Obj().Name())
	}
	methods := forwardedMethods(named)
	if len(methods) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMethods, named.Obj().Name())
	}

	imports := map[string]string{hktPath: "hkt"}
	qual := func(p *types.Package) string {
		if p.Path() == opts.PkgPath {
			return ""
		}
		imports[p.Path()] = p.Name()
		return p.Name()
	}

	names := make([]string, tparams.Len())
	decls := make([]string, tparams.Len())
	for i := range tparams.Len() {
		tp := tparams.At(i)
		names[i] = tp.Obj().Name()
		decls[i] = names[i] + " " + types.TypeString(tp.Constraint(), qual)
	}
	container := qualified(named.Obj(), qual) + "[" + strings.Join(names, ", ") + "]"
	recv := "b *" + opts.Box + "[" + strings.Join(names, ", ") + "]"

	var body bytes.Buffer
	fmt.Fprintf(&body, "// %s forwards every method of %s to the container it owns.\n", opts.Box, qualified(named.Obj(), qual))
	fmt.Fprintf(&body, "type %s[%s] struct {\n", opts.Box, strings.Join(decls, ", "))
	fmt.Fprintf(&body, "\thkt.Kind[%s, %s]\n", opts.Shape, names[0])
	fmt.Fprintf(&body, "\tboxed %s\n", container)
	body.WriteString("}\n")

	for _, m := range methods {
		body.WriteByte('\n')
		renderMethod(&body, recv, m, qual)
	}

	var src bytes.Buffer
	src.WriteString("// Code generated by boxgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", opts.Package)
	src.WriteString("import (\n")
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		fmt.Fprintf(&src, "\t%q\n", p)
	}
	src.WriteString(")\n\n")
	src.Write(body.Bytes())

	out, err := format.Source(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated box: %w", err)
	}
	return out, nil
}

func forwardedMethods(named *types.Named) []*types.Func {
	var methods []*types.Func
	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := range iface.NumMethods() {
			if m := iface.Method(i); m.Exported() {
				methods = append(methods, m)
			}
		}
	} else {
		for i := range named.NumMethods() {
			if m := named.Method(i); m.Exported() {
				methods = append(methods, m)
			}
		}
	}
	slices.SortFunc(methods, func(a, b *types.Func) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return methods
}

func renderMethod(w *bytes.Buffer, recv string, m *types.Func, qual types.Qualifier) {
	sig := m.Type().(*types.Signature)

	params := sig.Params()
	decls := make([]string, params.Len())
	args := make([]string, params.Len())
	for i := range params.Len() {
		p := params.At(i)
		name := p.Name()
		if name == "" || name == "_" || name == "b" {
			name = fmt.Sprintf("p%d", i)
		}
		typ := types.TypeString(p.Type(), qual)
		args[i] = name
		if sig.Variadic() && i == params.Len()-1 {
			typ = "..." + types.TypeString(p.Type().(*types.Slice).Elem(), qual)
			args[i] = name + "..."
		}
		decls[i] = name + " " + typ
	}

	results := sig.Results()
	var ret string
	switch results.Len() {
	case 0:
	case 1:
		ret = " " + types.TypeString(results.At(0).Type(), qual)
	default:
		rs := make([]string, results.Len())
		for i := range results.Len() {
			rs[i] = types.TypeString(results.At(i).Type(), qual)
		}
		ret = " (" + strings.Join(rs, ", ") + ")"
	}

	call := "b.boxed." + m.Name() + "(" + strings.Join(args, ", ") + ")"
	if results.Len() > 0 {
		call = "return " + call
	}
	fmt.Fprintf(w, "func (%s) %s(%s)%s {\n\t%s\n}\n", recv, m.Name(), strings.Join(decls, ", "), ret, call)
}

func qualified(obj *types.TypeName, qual types.Qualifier) string {
	if q := qual(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

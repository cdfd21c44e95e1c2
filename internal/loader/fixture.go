// Package loader builds a declaration graph — the class-like declarations
// the hierarchy core consumes, the per-library scopes that answer its name
// lookups, and the per-library interning tables — from a compact YAML
// fixture format. It is this module's own stand-in for the ParseTree
// collaborator §6 names: lexing and parsing a real source language are out
// of scope for the core (§1), but something has to hand it a tree to
// resolve, and test fixtures need a format that is easier to read than a
// hand-built *ast.ClassLikeDecl literal in every test.
package loader

// Fixture is the top-level shape of a loader YAML document: a set of
// libraries, each owning a set of class-like declarations.
type Fixture struct {
	Libraries []LibraryFixture `yaml:"libraries"`
}

// LibraryFixture describes one library: its classes, and the import
// aliases through which its classes reach other libraries' declarations.
type LibraryFixture struct {
	ID      string            `yaml:"id"`
	Imports map[string]string `yaml:"imports"`
	Classes []ClassFixture    `yaml:"classes"`
}

// ClassFixture is one class-like declaration, written in a compact textual
// form: type annotations are parsed from the `Name<Arg, ...>` /
// `prefix.Name` surface syntax §4.2 describes, via parseTypeExpr.
type ClassFixture struct {
	Name string `yaml:"name"`
	// Kind is one of "class" (default), "enum", or "mixin-application".
	Kind string `yaml:"kind"`
	// Root marks the designated root of the hierarchy. At most one class
	// across the whole fixture may set this.
	Root bool `yaml:"root"`

	TypeParams []TypeParamFixture `yaml:"typeParams"`

	Extends string `yaml:"extends"`

	// MixinSuper and Mixins together spell a mixin-application clause
	// (§4.4): `Extends S with M1, M2` or, for a named application
	// (Kind == "mixin-application"), `class Name = S with M1, M2`.
	MixinSuper string   `yaml:"mixinSuper"`
	Mixins     []string `yaml:"mixins"`

	Implements []string `yaml:"implements"`

	Constructors []ConstructorFixture `yaml:"constructors"`
	Members      []string             `yaml:"members"`
	EnumValues   []string             `yaml:"enumValues"`
}

// TypeParamFixture is one `<Name extends Bound>` entry.
type TypeParamFixture struct {
	Name  string `yaml:"name"`
	Bound string `yaml:"bound"`
}

// ConstructorFixture is one constructor declaration.
type ConstructorFixture struct {
	Name    string         `yaml:"name"`
	Params  []ParamFixture `yaml:"params"`
	Factory bool           `yaml:"factory"`
	Private bool           `yaml:"private"`
}

// ParamFixture is one constructor parameter.
type ParamFixture struct {
	Name     string `yaml:"name"`
	Named    bool   `yaml:"named"`
	Optional bool   `yaml:"optional"`
}

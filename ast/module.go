package ast

type ImportSpecifier struct {
	Info
	Imported *Identifier
	Local    *Identifier
}

func (n *ImportSpecifier) NodeKind() Kind { return KindImportSpecifier }

type ImportDefaultSpecifier struct {
	Info
	Local *Identifier
}

func (n *ImportDefaultSpecifier) NodeKind() Kind { return KindImportDefaultSpecifier }

type ImportNamespaceSpecifier struct {
	Info
	Local *Identifier
}

func (n *ImportNamespaceSpecifier) NodeKind() Kind { return KindImportNamespaceSpecifier }

// ImportDeclaration.Specifiers elements are *ImportSpecifier,
// *ImportDefaultSpecifier, or *ImportNamespaceSpecifier.
type ImportDeclaration struct {
	Info
	Specifiers []Node
	Source     *StringLiteral
}

func (n *ImportDeclaration) NodeKind() Kind           { return KindImportDeclaration }
func (n *ImportDeclaration) statementNode()           {}
func (n *ImportDeclaration) moduleDeclarationNode()   {}

type ExportSpecifier struct {
	Info
	Local    *Identifier
	Exported *Identifier
}

func (n *ExportSpecifier) NodeKind() Kind { return KindExportSpecifier }

// ExportNamedDeclaration either wraps Declaration (a local
// declaration being exported, e.g. `export function f(){}`) or carries
// Specifiers re-exporting existing bindings; Source is non-nil only for
// a re-export (`export {x} from "./m.js"`).
type ExportNamedDeclaration struct {
	Info
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
}

func (n *ExportNamedDeclaration) NodeKind() Kind         { return KindExportNamedDeclaration }
func (n *ExportNamedDeclaration) statementNode()         {}
func (n *ExportNamedDeclaration) moduleDeclarationNode() {}

// ExportDefaultDeclaration.Declaration is a Statement (function/class
// declaration) or an Expression wrapped for uniformity.
type ExportDefaultDeclaration struct {
	Info
	Declaration Node
}

func (n *ExportDefaultDeclaration) NodeKind() Kind         { return KindExportDefaultDeclaration }
func (n *ExportDefaultDeclaration) statementNode()         {}
func (n *ExportDefaultDeclaration) moduleDeclarationNode() {}

type ExportAllDeclaration struct {
	Info
	Exported *Identifier // non-nil for `export * as ns from "./m.js"`
	Source   *StringLiteral
}

func (n *ExportAllDeclaration) NodeKind() Kind         { return KindExportAllDeclaration }
func (n *ExportAllDeclaration) statementNode()         {}
func (n *ExportAllDeclaration) moduleDeclarationNode() {}

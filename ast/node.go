// Package ast defines the closed, tagged-variant tree this module's
// pipeline rewrites. Every concrete node type embeds Info, which carries
// position data, comments, and the metadata bag (Ignored flag, Parent
// back-reference) that transformers and the traversal engine read and
// write.
package ast

// Kind identifies which concrete node type a Node value holds. It is a
// closed enumeration — there is no registration mechanism, new kinds are
// added here and nowhere else.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindProgram

	// Statements
	KindExpressionStatement
	KindBlockStatement
	KindEmptyStatement
	KindDebuggerStatement
	KindVariableDeclaration
	KindFunctionDeclaration
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBreakStatement
	KindContinueStatement
	KindSwitchStatement
	KindThrowStatement
	KindTryStatement
	KindLabeledStatement
	KindClassDeclaration

	// Supporting (non-statement, non-expression) nodes
	KindVariableDeclarator
	KindSwitchCase
	KindCatchClause
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindProperty

	// Expressions
	KindIdentifier
	KindPrivateIdentifier
	KindNumberLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindArrayExpression
	KindObjectExpression
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSequenceExpression
	KindTemplateLiteral
	KindTaggedTemplateExpression
	KindSpreadElement
	KindThisExpression
	KindSuper
	KindYieldExpression
	KindAwaitExpression

	// Patterns
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	// Modules
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindExportSpecifier
)

// Range is a half-open byte offset span into the original source text.
type Range struct {
	Start, End int
}

// Loc is a 1-indexed line/0-indexed column position, the pair emitted
// into source maps.
type Loc struct {
	Line, Column int
}

// CommentKind distinguishes line from block comments.
type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// Comment is an attached, non-semantic piece of source text.
type Comment struct {
	Kind CommentKind
	Text string
	Range
}

// Info is embedded by every concrete node. It is the metadata bag spec
// calls for: position/range, attached comments, the Ignored flag a
// transformer sets to exempt a subtree, and Parent, a non-owning
// back-reference maintained by the Parentification transformer
// (transform.NewParentification) rather than by the traversal engine
// itself.
type Info struct {
	Range
	Start, EndLoc    Loc
	LeadingComments  []Comment
	TrailingComments []Comment
	Ignored          bool
	Parent           Node

	// verbatimText and hasVerbatimText back SetVerbatimText/VerbatimTextOf:
	// a generic, per-node opt-in to spec §4.6's verbatim marker, not tied
	// to any particular Kind. NumberLiteral/StringLiteral's own Raw field
	// is a separate, narrower mechanism and is untouched by this one.
	verbatimText    string
	hasVerbatimText bool
}

func (i *Info) base() *Info { return i }

// Node is implemented by every concrete AST type. NodeKind reports the
// tagged variant; base returns the embedded Info so shared helpers
// (SetParent, MarkIgnored, ...) can reach it without a type switch.
type Node interface {
	NodeKind() Kind
	base() *Info
}

// Statement is implemented by node types valid in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by node types valid in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is implemented by node types valid in binding position
// (function parameters, declarator ids, assignment targets).
type Pattern interface {
	Node
	patternNode()
}

// ModuleDeclaration is implemented by import/export statement nodes.
type ModuleDeclaration interface {
	Statement
	moduleDeclarationNode()
}

// SetParent installs n's non-owning parent back-reference. Called by the
// Parentification transformer's Enter callback during its Initializing
// traversal, never by the traversal engine itself — see SPEC_FULL.md's
// open-question decision about visitor-returned-node validation: nothing here
// verifies that parent and child agree about child's position.
func SetParent(n Node, parent Node) {
	if n != nil {
		n.base().Parent = parent
	}
}

// ParentOf returns n's last-computed parent, or nil before the first
// Parentification pass or for Program, which has none.
func ParentOf(n Node) Node {
	if n == nil {
		return nil
	}
	return n.base().Parent
}

// Ignored reports whether a transformer has exempted n's subtree.
func Ignored(n Node) bool {
	return n != nil && n.base().Ignored
}

// MarkIgnored exempts n and its subtree from further rewriting: the
// traversal engine makes no Enter or Leave call on an ignored node or
// on anything below it.
func MarkIgnored(n Node, ignored bool) {
	if n != nil {
		n.base().Ignored = ignored
	}
}

// RangeOf returns n's byte-offset span into the source it was parsed
// from, or the zero Range for a synthesized node.
func RangeOf(n Node) Range {
	if n == nil {
		return Range{}
	}
	return n.base().Range
}

// SetRange records n's byte-offset span, called by the parser façade
// while lowering.
func SetRange(n Node, r Range) {
	if n != nil {
		n.base().Range = r
	}
}

// StartLoc returns n's starting line/column, or the zero Loc for a
// synthesized node.
func StartLoc(n Node) Loc {
	if n == nil {
		return Loc{}
	}
	return n.base().Start
}

// SetStartLoc records n's starting line/column.
func SetStartLoc(n Node, l Loc) {
	if n != nil {
		n.base().Start = l
	}
}

// LeadingComments returns comments attached immediately before n.
func LeadingComments(n Node) []Comment {
	if n == nil {
		return nil
	}
	return n.base().LeadingComments
}

// TrailingComments returns comments attached immediately after n.
func TrailingComments(n Node) []Comment {
	if n == nil {
		return nil
	}
	return n.base().TrailingComments
}

// AddLeadingComment appends a leading comment to n; the generator prints
// leading comments when its Comments option is set. Neither the parser
// façade nor the built-in transformers call it.
func AddLeadingComment(n Node, c Comment) {
	if n != nil {
		n.base().LeadingComments = append(n.base().LeadingComments, c)
	}
}

// SetVerbatimText marks n so the generator emits text in its place
// instead of printing n's fields through the normal per-Kind rules —
// spec §4.6's verbatim marker, usable on any node kind a transformer
// wants to protect (a StringArray-encoded literal it has already
// rendered to source form, a hand-built expression a transformer
// doesn't want re-derived from its children, ...).
func SetVerbatimText(n Node, text string) {
	if n != nil {
		n.base().verbatimText = text
		n.base().hasVerbatimText = true
	}
}

// VerbatimTextOf returns the text SetVerbatimText recorded for n and
// whether it was ever set.
func VerbatimTextOf(n Node) (string, bool) {
	if n == nil {
		return "", false
	}
	b := n.base()
	return b.verbatimText, b.hasVerbatimText
}

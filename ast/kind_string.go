package ast

var kindNames = map[Kind]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindExpressionStatement:      "ExpressionStatement",
	KindBlockStatement:           "BlockStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindDebuggerStatement:        "DebuggerStatement",
	KindVariableDeclaration:      "VariableDeclaration",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindReturnStatement:          "ReturnStatement",
	KindIfStatement:              "IfStatement",
	KindForStatement:             "ForStatement",
	KindForInStatement:           "ForInStatement",
	KindForOfStatement:           "ForOfStatement",
	KindWhileStatement:           "WhileStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindSwitchStatement:          "SwitchStatement",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindLabeledStatement:         "LabeledStatement",
	KindClassDeclaration:         "ClassDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindSwitchCase:               "SwitchCase",
	KindCatchClause:              "CatchClause",
	KindClassBody:                "ClassBody",
	KindMethodDefinition:         "MethodDefinition",
	KindPropertyDefinition:       "PropertyDefinition",
	KindProperty:                 "Property",
	KindIdentifier:               "Identifier",
	KindPrivateIdentifier:        "PrivateIdentifier",
	KindNumberLiteral:            "NumberLiteral",
	KindStringLiteral:            "StringLiteral",
	KindBooleanLiteral:           "BooleanLiteral",
	KindNullLiteral:              "NullLiteral",
	KindRegExpLiteral:            "RegExpLiteral",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindSpreadElement:            "SpreadElement",
	KindThisExpression:           "ThisExpression",
	KindSuper:                    "Super",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindAssignmentPattern:        "AssignmentPattern",
	KindRestElement:              "RestElement",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

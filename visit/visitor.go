// Package visit defines the protocol a transformer exposes to the
// traversal engine: an Enter/Leave pair of callbacks and the four-way
// tagged result each of them returns.
package visit

import "jsobfuscate/ast"

// Action tags which of the four traversal outcomes a Result carries.
type Action uint8

const (
	// ActionSame leaves the visited node and its subtree untouched;
	// the engine continues descending normally.
	ActionSame Action = iota
	// ActionReplace substitutes Result.Node in the visited node's
	// place. On Enter, the engine then descends into the replacement
	// (not the original). On Leave, the replacement is what the
	// parent keeps.
	ActionReplace
	// ActionSkip stops the engine from descending into the visited
	// node's children. Only meaningful from Enter; a Leave callback
	// returning ActionSkip is equivalent to ActionSame, since there
	// is nothing left to descend into.
	ActionSkip
	// ActionAbort stops the whole traversal and surfaces Result.Err
	// to the caller of traverse.Replace.
	ActionAbort
)

// Result is the tagged variant every Enter/Leave callback returns.
type Result struct {
	Action Action
	Node   ast.Node // set iff Action == ActionReplace
	Err    error    // set iff Action == ActionAbort
}

// Same is the common case: no change, keep descending.
func Same() Result { return Result{Action: ActionSame} }

// Replace substitutes n for the visited node.
func Replace(n ast.Node) Result { return Result{Action: ActionReplace, Node: n} }

// SkipChildren stops the engine from visiting the current node's
// children.
func SkipChildren() Result { return Result{Action: ActionSkip} }

// Abort stops the traversal entirely with err.
func Abort(err error) Result { return Result{Action: ActionAbort, Err: err} }

// EnterFunc is called in pre-order, before a node's children are
// visited. parent is nil only for the root.
type EnterFunc func(n ast.Node, parent ast.Node) Result

// LeaveFunc is called in post-order, after a node's children (and any
// Enter-time replacement) have been visited.
type LeaveFunc func(n ast.Node, parent ast.Node) Result

// Visitor is the protocol a single transformer implements for a single
// stage. Either callback may be nil, meaning "no-op, same as returning
// Same()".
type Visitor struct {
	Enter EnterFunc
	Leave LeaveFunc
}

// Fuse combines multiple visitors scheduled into the same batch (spec's
// "visitor fusion rule") into one Visitor that runs each Enter in batch
// order, returning at once on the first Skip or Abort result; a Replace
// result is threaded through, so each later Enter receives the node the
// earlier ones substituted. This mirrors how a single traversal pass
// must behave as if every batched transformer walked the tree
// independently and in order. Leave callbacks run in
// the same order, independently of which Enter produced a replacement,
// since a later transformer's Enter always sees whatever the earlier
// one already substituted.
func Fuse(visitors []*Visitor) *Visitor {
	active := make([]*Visitor, 0, len(visitors))
	for _, v := range visitors {
		if v != nil {
			active = append(active, v)
		}
	}
	if len(active) == 0 {
		return &Visitor{}
	}
	if len(active) == 1 {
		return active[0]
	}
	return &Visitor{
		Enter: func(n ast.Node, parent ast.Node) Result {
			current := n
			for _, v := range active {
				if v.Enter == nil {
					continue
				}
				res := v.Enter(current, parent)
				switch res.Action {
				case ActionSame:
					continue
				case ActionReplace:
					current = res.Node
				default:
					return res
				}
			}
			if current != n {
				return Replace(current)
			}
			return Same()
		},
		Leave: func(n ast.Node, parent ast.Node) Result {
			current := n
			for _, v := range active {
				if v.Leave == nil {
					continue
				}
				res := v.Leave(current, parent)
				switch res.Action {
				case ActionSame, ActionSkip:
					continue
				case ActionReplace:
					current = res.Node
				default:
					return res
				}
			}
			if current != n {
				return Replace(current)
			}
			return Same()
		},
	}
}

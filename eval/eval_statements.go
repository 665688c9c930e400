/*
File    : rebar-go/eval/eval_statements.go
*/
package eval

import (
	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/parser"
)

// evaluateBlock executes a block of statement nodes inside a fresh local
// scope. The prior-eval flag threads the outcome of the most recent
// if/else-if conditional through the chain so later branches only run when
// every earlier one declined. Non-normal states (returns, breaks,
// continues, and runtime errors) unwind to the caller.
func (f *frame) evaluateBlock(nodes []parser.Node) returnState {
	f.pushScope()
	defer f.popScope()

	priorEval := true

	for i := range nodes {
		n := &nodes[i]

		switch n.Kind {
		case parser.NodeExpression:
			result := f.evaluateExpression(n.Expr)
			if result.IsError() {
				return returnState{status: statusFunctionReturn, result: result}
			}

		case parser.NodeBlock:
			state := f.evaluateBlock(n.Block)
			if state.status != statusNormal {
				return state
			}

		case parser.NodeIf:
			cond := f.evaluateExpression(n.If.Conditional)
			if cond.IsError() {
				return returnState{status: statusFunctionReturn, result: cond}
			}
			priorEval = cond.Truthy()
			if priorEval {
				state := f.evaluateBlock(n.If.Body)
				if state.status != statusNormal {
					return state
				}
			}

		case parser.NodeElseIf:
			if !priorEval {
				cond := f.evaluateExpression(n.If.Conditional)
				if cond.IsError() {
					return returnState{status: statusFunctionReturn, result: cond}
				}
				priorEval = cond.Truthy()
				if priorEval {
					state := f.evaluateBlock(n.If.Body)
					if state.status != statusNormal {
						return state
					}
				}
			}

		case parser.NodeElse:
			if !priorEval {
				state := f.evaluateBlock(n.Block)
				if state.status != statusNormal {
					return state
				}
			}

		case parser.NodeFor:
			state := f.evaluateFor(n.For)
			if state.status != statusNormal {
				return state
			}

		case parser.NodeFunction:
			slot, errv := f.resolveAssignableExpression(n.Fn.Identifier)
			if slot == nil {
				return returnState{status: statusFunctionReturn, result: errv}
			}
			source := &interpretedFunctionSource{
				interp: f.interp,
				params: n.Fn.Parameters,
				body:   n.Fn.Body,
			}
			f.interp.sources = append(f.interp.sources, source)
			*slot = objects.NewFunctionValue(&objects.Function{Source: source})

		case parser.NodeWhile:
			for {
				cond := f.evaluateExpression(n.While.Conditional)
				if cond.IsError() {
					return returnState{status: statusFunctionReturn, result: cond}
				}
				if !cond.Truthy() {
					break
				}
				state := f.evaluateBlock(n.While.Body)
				if state.status == statusFunctionReturn {
					return state
				}
				if state.status == statusLoopBreak {
					break
				}
			}

		case parser.NodeReturn:
			return returnState{status: statusFunctionReturn, result: f.evaluateExpression(n.Expr)}

		case parser.NodeBreak:
			return returnState{status: statusLoopBreak, result: objects.Null}

		case parser.NodeContinue:
			return returnState{status: statusLoopContinue, result: objects.Null}

		case parser.NodeDo, parser.NodeSwitch, parser.NodeClass:
			// Reserved statements; no semantics.
		}
	}

	return returnState{status: statusNormal, result: objects.Null}
}

// evaluateFor runs a for loop. The loop header gets its own scope so an
// initialization like "local k = 0" stays private to the loop.
func (f *frame) evaluateFor(decl *parser.ForDecl) returnState {
	f.pushScope()
	defer f.popScope()

	if result := f.evaluateExpression(decl.Initialization); result.IsError() {
		return returnState{status: statusFunctionReturn, result: result}
	}

	for {
		cond := f.evaluateExpression(decl.Conditional)
		if cond.IsError() {
			return returnState{status: statusFunctionReturn, result: cond}
		}
		if !cond.Truthy() {
			break
		}

		state := f.evaluateBlock(decl.Body)
		if state.status == statusFunctionReturn {
			return state
		}
		if state.status == statusLoopBreak {
			break
		}

		if result := f.evaluateExpression(decl.Iteration); result.IsError() {
			return returnState{status: statusFunctionReturn, result: result}
		}
	}

	return returnState{status: statusNormal, result: objects.Null}
}

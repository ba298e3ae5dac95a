package igor

import "testing"

func TestBuiltinList(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(list 1 2 3)", "{1 2 3}")
	testEval(t, env, "(list)", "<function>")
	testEval(t, env, "(list (+ 1 1) {x})", "{2 {x}}")
}

func TestBuiltinHeadTail(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(head {1 2 3})", "{1}")
	testEval(t, env, "(tail {1 2 3})", "{2 3}")
	testEval(t, env, "(tail {1})", "{}")
	testEval(t, env, "(head {})", "Error: Function 'head' passed {} for argument 0.")
	testEval(t, env, "(tail {})", "Error: Function 'tail' passed {} for argument 0.")
	testEval(t, env, "(head 5)", "Error: Function 'head' passed incorrect type for argument 0. Got Number, Expected Q-Expression.")
	testEval(t, env, "(head {1} {2})", "Error: Function 'head' passed incorrect number of arguments. Got 2, Expected 1.")
}

func TestBuiltinJoin(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(join {1 2} {3 4})", "{1 2 3 4}")
	testEval(t, env, "(join {} {1} {} {2 3})", "{1 2 3}")
	testEval(t, env, "(join {1})", "{1}")
	testEval(t, env, "(join {1 2} 3)", "Error: Function 'join' passed incorrect type for argument 1. Got Number, Expected Q-Expression.")
}

func TestBuiltinJoinNoPartialResult(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "def {a} {1 2}", "()")
	testEval(t, env, "join a 3", "Error: Function 'join' passed incorrect type for argument 1. Got Number, Expected Q-Expression.")
	testEval(t, env, "a", "{1 2}")
}

func TestBuiltinEval(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(eval {+ 1 2})", "3")
	testEval(t, env, "(eval {})", "()")
	testEval(t, env, "(eval (tail {tail tail {5 6 7}}))", "{6 7}")
	testEval(t, env, "(eval 1)", "Error: Function 'eval' passed incorrect type for argument 0. Got Number, Expected Q-Expression.")
	testEval(t, env, "(eval {1} {2})", "Error: Function 'eval' passed incorrect number of arguments. Got 2, Expected 1.")
}

func TestBuiltinDef(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(def {x} 100)", "()")
	testEval(t, env, "x", "100")
	testEval(t, env, "(def {x} 200)", "()")
	testEval(t, env, "x", "200")
	testEval(t, env, "(def {a b} 1 {2 3})", "()")
	testEval(t, env, "(+ a x)", "201")
	testEval(t, env, "b", "{2 3}")
	testEval(t, env, "(def {arglist} {p q})", "()")
	testEval(t, env, "(def arglist 5 6)", "()")
	testEval(t, env, "(list p q)", "{5 6}")
}

func TestBuiltinDefErrors(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(def x 1)", "Error: Unbound Symbol 'x'")
	testEval(t, env, "(def 1 1)", "Error: Function 'def' passed incorrect type for argument 0. Got Number, Expected Q-Expression.")
	testEval(t, env, "(def {1} 1)", "Error: Function 'def' cannot define non-symbol. Got Number, Expected Symbol.")
	testEval(t, env, "(def {a b} 1)", "Error: Function 'def' passed incorrect number of values to symbols. Got 1, Expected 2.")
	testEval(t, env, "a", "Error: Unbound Symbol 'a'")
}

func TestBuiltinDefRebindsBuiltin(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(def {plus} +)", "()")
	testEval(t, env, "(plus 1 2)", "3")
}

func TestArithmetic(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(+ 1 2 3)", "6")
	testEval(t, env, "(- 10 2 3)", "5")
	testEval(t, env, "(- 5)", "-5")
	testEval(t, env, "(* 2 3 4)", "24")
	testEval(t, env, "(/ 20 2 5)", "2")
	testEval(t, env, "(/ -7 2)", "-3")
	testEval(t, env, "(% 7 3)", "1")
	testEval(t, env, "(% -7 3)", "-1")
	testEval(t, env, "(^ 2 10)", "1024")
	testEval(t, env, "(^ 3 0)", "1")
	testEval(t, env, "(^ -2 3)", "-8")
	testEval(t, env, "(min 4 2 8)", "2")
	testEval(t, env, "(max 4 2 8)", "8")
	testEval(t, env, "(+ 5)", "5")
}

func TestArithmeticErrors(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(/ 1 0)", "Error: Division By Zero.")
	testEval(t, env, "(/ 10 0 x)", "Error: Unbound Symbol 'x'")
	testEval(t, env, "(% 1 0)", "Error: Division By Zero.")
	testEval(t, env, "(+ 1 {2})", "Error: Function '+' passed incorrect type for argument 1. Got Q-Expression, Expected Number.")
	testEval(t, env, "(^ 2 -1)", "Error: Negative Exponent.")
	testEvalError(t, env, "(* 1 head)")
}

func TestArithmeticOverflow(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(+ 9223372036854775807 1)", "Error: Integer Overflow.")
	testEval(t, env, "(- -9223372036854775808)", "Error: Integer Overflow.")
	testEval(t, env, "(/ -9223372036854775808 -1)", "Error: Integer Overflow.")
	testEval(t, env, "(^ 2 63)", "Error: Integer Overflow.")
	testEval(t, env, "(^ 2 62)", "4611686018427387904")
	testEval(t, env, "(^ 1 9223372036854775807)", "1")
	testEval(t, env, "(- 9223372036854775807 -1 1)", "9223372036854775807")
	testEval(t, env, "(- (+ 9223372036854775807 1) 1)", "Error: Integer Overflow.")
}

func TestDivisionAbortsFold(t *testing.T) {
	env := newTestEnv()
	testEval(t, env, "(/ 8 0 2)", "Error: Division By Zero.")
	testEval(t, env, "(/ 8 2 0 {x})", "Error: Function '/' passed incorrect type for argument 3. Got Q-Expression, Expected Number.")
}

func TestBuiltinOpDirect(t *testing.T) {
	if got := builtinOp(nil, "+").String(); got != "Error: Function '+' passed too few arguments. Got 0, Expected at least 1." {
		t.Fatalf("got %s", got)
	}
	if got := builtinJoin(nil, nil).Type(); got != TypeError {
		t.Fatalf("got %s", got)
	}
}

package codegen

import (
	"fmt"
	"strings"

	"github.com/poiboi-lang/poiboic/internal/funcs"
)

// paramSuffix is the formal-parameter marker of the emitted-file contract
// (spec §6): the function signature names each parameter
// "<name>_local_poiboivar"; the body then refers to it like any other
// local, via LOCAL_VAR_<name>, bridged by an initializing declaration at
// the top of the body (the parameter counts as the local's "prior
// assignment" required by spec §8's codegen invariant).
const paramSuffix = "_local_poiboivar"

// EmitFunctionDefinition renders one function's full definition, per
// spec §4.5's "Function definition" rule.
func EmitFunctionDefinition(fn *funcs.Function, ctx *Context) (string, error) {
	fnCtx := NewContext(ctx.Table, ctx.Globals)

	var bridge strings.Builder
	for _, p := range fn.Params {
		fnCtx.DeclareLocal(p)
		bridge.WriteString(fmt.Sprintf("PBString %s%s = %s%s;\n", localVarPrefix, p, p, paramSuffix))
	}

	body, err := EmitCodeBlock(fn.Body, fnCtx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s {\n%s%s\nreturn PBString();\n}\n",
		Declaration(fn), bridge.String(), body), nil
}

// Declaration renders a function's forward-declaration-compatible
// signature: "PBString <name>_poiboi_fn(PBString <p0>_local_poiboivar, …)".
func Declaration(fn *funcs.Function) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = "PBString " + p + paramSuffix
	}
	return fmt.Sprintf("PBString %s_poiboi_fn(%s)", fn.Name, strings.Join(params, ", "))
}

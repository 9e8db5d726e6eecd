package middleware

import "context"

// ToolFunc is the handler signature shared by all function tools. The context
// passed at runtime is the ADK tool context, which satisfies context.Context.
type ToolFunc func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error)

// Middleware wraps a ToolFunc with additional behavior.
type Middleware func(ToolFunc) ToolFunc

// Chain applies middlewares to fn. The first middleware in the list becomes
// the outermost wrapper.
func Chain(fn ToolFunc, mws ...Middleware) ToolFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](fn)
	}
	return fn
}

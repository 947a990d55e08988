// Package surgo builds SurrealQL query strings from composable, typed
// parts, without manual concatenation.
//
// Three layers cooperate:
//
//   - [Query] assembles clause segments fluently and substitutes deferred
//     parameters when [Query.Build] flattens them into the final text.
//   - [github.com/surgo-dev/surgo/schema] declares a model's fields and
//     graph relations once, as an immutable descriptor graph whose nodes
//     render themselves as path expressions (`handle`, `->manage->Project`,
//     `<-manage<-Account as authors`).
//   - [Foreign] and [ForeignSlice] carry "key or loaded record" references
//     inside entity structs and collapse to plain key strings at the JSON
//     boundary.
//
// surgo performs no I/O: a built query is plain text for whatever transport
// executes it, and [Bind] only coerces already-decoded response values into
// typed targets.
package surgo

// Package skin decides which built-in skin elements a mapset exercises.
//
// The package holds a fixed, ordered rule table. Each rule governs one or more
// element names and carries an optional activation predicate evaluated against
// aggregate mapset facts. Names are either literal file names
// ("scorebar-bg.png") or frame templates containing the {n} placeholder
// ("hit300-{n}.png"), which stand for every numbered animation frame.
//
// # Precedence
//
// Rules are resolved in registration order and the first match wins. Literal
// names are checked before templates. Duplicate names are tolerated; a later
// registration of the same name is shadowed by the earlier one.
//
// # Still frames
//
// For every templated name, the builder derives a still-frame rule for the
// un-animated name ("hit300-{n}.png" -> "hit300.png"). The still frame is used
// only when its template's own condition holds and no referenced asset is an
// animation frame of that template: animation takes priority over the still frame.
//
// # Concurrency
//
// A Table is immutable once built. The process-wide table returned by Default
// is constructed exactly once (sync.OnceValue) and may be queried from any
// number of goroutines without locking.
package skin

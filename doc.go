// Package sift turns field-aware search expressions into boolean filter
// trees and evaluates them against in-memory rows.
//
// A search input commits (field, operator, value) triples; sift validates
// each against a fixed field registry, accumulates the results into an AND
// group, and filters row sets by the accumulated tree, preserving row
// order. Evaluation is deliberately permissive: ill-formed values resolve
// to boolean results instead of errors, so the input can always display
// what the user typed.
//
// # Quick Start
//
//	reg := filter.NewRegistry(
//	    filter.Field{Key: "name", Label: "Name", Type: filter.TypeString},
//	    filter.Field{Key: "age", Label: "Age", Type: filter.TypeNumber},
//	    filter.Field{Key: "status", Label: "Status", Type: filter.TypeEnum,
//	        Options: filter.StaticOptions{"active", "draft", "archived"}},
//	)
//
//	session := sift.New(reg)
//	_ = session.Commit(ctx, "status", filter.OpEqual, "active")
//	_ = session.Commit(ctx, "age", filter.OpGreaterThan, "30")
//
//	matched := session.Apply(ctx, rows) // original order preserved
//
// The session publishes its root tree to OnChange listeners after every
// edit, offers per-field operator lists via Operators, and resolves enum
// and relation value options via ResolveOptions with a last-query-wins
// policy when lookups race.
//
// # Key Behaviors
//
//   - Immutable trees: every edit builds a new tree; held snapshots never
//     change underfoot.
//   - Vacuous policy: a nil root and an empty AND group match everything,
//     an empty OR group matches nothing.
//   - Date sniffing: two YYYY-MM-DD-shaped strings compare as calendar
//     dates whatever the field's declared type.
//   - NaN policy: relational comparison with an unparseable number is
//     false, for every relational operator.
package sift

// Package filter compiles field-aware search expressions into boolean
// filter trees and evaluates them against in-memory records.
//
// A Registry describes the filterable fields. NewCondition validates a
// (field, operator, value) triple against it and produces a Condition leaf;
// leaves combine into Group nodes, which are immutable values - edits copy
// the tree. Evaluate applies a tree to a Record under deliberately
// permissive coercion rules, and Select/Apply filter whole row sets through
// a Roaring bitmap of matching indices. Enum and relation fields enumerate
// their legal values through an OptionSource, resolved by a Resolver with a
// last-query-wins policy when lookups race.
package filter

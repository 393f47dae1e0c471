// Package catalog holds the static tables the planner works from: ordered
// keyword rules for classification, priority, title substitution and
// description selection, plus one archetype catalog per goal type.
//
// Every table is package-private and initialized once. Accessors return
// copies so that concurrent planners never observe a mutated table.
package catalog

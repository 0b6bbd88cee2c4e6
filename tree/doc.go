// Package tree is the output data model spec.md §3 describes as "Parse
// tree node": a tree mirroring the shape of the grammar that matched the
// input, where every segment node carries its decoded field values and
// every record-group node carries its matched children in appearance
// order.
//
// Node is built exclusively by package treebuild; this package only
// defines the shape and read-only accessors other packages (segments,
// core) use to walk it.
package tree

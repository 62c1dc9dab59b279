// Package content defines the documentation payload model and its merge
// semantics.
//
// Content is a recursive value: a text leaf, or a structured node with
// an ordered (position-indexed) part and a named part. Both parts may
// coexist in one node and nest to arbitrary depth. Ordered entries are
// always processed before named entries, giving every traversal a
// stable order.
//
// Merge layers new documentation onto existing documentation without
// discarding anything: text promotes to single-element lists, lists
// append, named entries merge recursively. Repeated merges compound
// structure on purpose; callers that want replacement semantics use
// the store's SetContent instead.
package content

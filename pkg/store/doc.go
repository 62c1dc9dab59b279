// Package store implements the weak-keyed association between subjects
// and their documentation content, with merge-on-attach semantics and
// extension-chain fallback on lookup.
package store

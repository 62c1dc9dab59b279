// Package registry provides a generic, type-safe registry for
// name-keyed components such as extension provider factories. It
// supports automatic registration through init() functions.
package registry

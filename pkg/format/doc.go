// Package format renders documentation content for display: plain
// console text, HTML fragments, and recursive HTML documentation trees
// over composite subjects.
package format

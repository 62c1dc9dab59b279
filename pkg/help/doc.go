// Package help is the callable facade over the documentation registry:
// attach documentation to values, look it up through the extension
// chain, print it as console text, and export it as HTML.
//
// Typical use:
//
//	h := help.New()
//	h.Docstring("Frobnicates widgets.").For(Frobnicate)
//	h.Invoke(Frobnicate)
package help

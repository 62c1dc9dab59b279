package content

// Merge combines incoming into existing and returns the merged value,
// which becomes the authoritative record for the subject. Callers must
// not mutate incoming through retained aliases afterwards.
//
// The rules:
//   - existing nil: incoming is returned verbatim
//   - incoming text: treated as an ordered part of length one
//   - existing text: promoted to an ordered part of length one first
//   - incoming ordered entries append to existing's ordered part, in
//     index order, before any named entry is considered
//   - incoming named entries merge recursively into structured
//     destinations, promote scalar destinations to a two-element list,
//     and fill empty slots directly
//
// Except for the nil and text-promotion cases the merge mutates
// existing in place. Merging is deterministic for a fixed sequence of
// inputs, which is what repeated Attach calls rely on.
func Merge(existing, incoming *Content) *Content {
	if incoming == nil {
		return existing
	}
	if existing == nil {
		return incoming
	}
	if existing.IsText() {
		existing = NewList(NewText(existing.Text))
	}

	if incoming.IsText() {
		existing.Append(incoming)
		return existing
	}

	existing.Append(incoming.Ordered...)

	for _, name := range incoming.Names() {
		in := incoming.Named[name]
		cur := existing.Get(name)
		switch {
		case cur == nil:
			existing.Set(name, in)
		case cur.IsStructured():
			Merge(cur, in)
		default:
			// Scalar destination promotes to an ordered pair.
			existing.Set(name, NewList(cur, in))
		}
	}
	return existing
}

package ecs

// ForEach2 calls fn for every entity holding both an A and a B component.
// It walks the smaller of the two stores. Both stores reject inserts and
// removals until fn returns for the last match.
func ForEach2[A, B any](w *World, fn func(Entity, *A, *B)) {
	if fn == nil {
		return
	}
	sa := storeOf[A](w)
	sb := storeOf[B](w)

	sa.readers++
	sb.readers++
	defer func() {
		sa.readers--
		sb.readers--
	}()

	if sa.len() <= sb.len() {
		for e, a := range sa.data {
			if b, ok := sb.data[e]; ok {
				fn(e, a, b)
			}
		}
		return
	}
	for e, b := range sb.data {
		if a, ok := sa.data[e]; ok {
			fn(e, a, b)
		}
	}
}

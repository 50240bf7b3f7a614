package fieldlens

// Superclasses returns the full superclass chain of t, most-derived first:
// t itself, then each superclass up to the root. A nil t yields nil.
func Superclasses(t Type) []Type {
	var chain []Type
	for c := t; c != nil; c = c.Superclass() {
		chain = append(chain, c)
	}
	return chain
}

// AllInterfaces returns every interface implemented by t, directly or
// transitively: the direct interfaces of t and of each of its superclasses,
// plus all of their superinterfaces. The result preserves declaration order
// (depth-first) and is deduplicated by descriptor identity, so a diamond in
// the interface graph contributes each interface exactly once.
func AllInterfaces(t Type) []Type {
	var out []Type
	seen := make(map[Type]bool)
	for _, c := range Superclasses(t) {
		collectInterfaces(c.Interfaces(), seen, &out)
	}
	return out
}

// collectInterfaces recursively gathers interfaces and their
// superinterfaces in declaration order.
func collectInterfaces(ifaces []Type, seen map[Type]bool, out *[]Type) {
	for _, it := range ifaces {
		if it == nil || seen[it] {
			continue
		}
		seen[it] = true
		*out = append(*out, it)
		collectInterfaces(it.Interfaces(), seen, out)
	}
}

package javatype

// IsAssignableFrom reports whether sub is a subtype of super, i.e.
// sub <: super: reflexive, transitive through Supertype and
// Interfaces, and covariant across Array.ElementType.
//
// The closure walk accumulates into a visited set to avoid revisiting
// a type twice in the presence of diamond interface inheritance.
func IsAssignableFrom(super, sub Type) bool {
	if super == nil || sub == nil {
		return false
	}
	if subArr, ok := sub.(*Array); ok {
		superArr, ok := super.(*Array)
		if !ok {
			return false
		}
		return IsAssignableFrom(superArr.ElementType, subArr.ElementType)
	}

	subClass, ok := sub.(*Class)
	if !ok {
		return typesEqual(super, sub)
	}
	superClass, ok := super.(*Class)
	if !ok {
		return false
	}
	return classAssignable(superClass, subClass)
}

func classAssignable(super, sub *Class) bool {
	visited := make(map[*Class]bool)
	var walk func(c *Class) bool
	walk = func(c *Class) bool {
		if c == nil || visited[c] {
			return false
		}
		visited[c] = true
		if c == super || c.FullyQualifiedName == super.FullyQualifiedName {
			return true
		}
		if c.Supertype != nil && walk(c.Supertype) {
			return true
		}
		for _, iface := range c.Interfaces {
			if walk(iface) {
				return true
			}
		}
		return false
	}
	return walk(sub)
}

func typesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// SupertypeClosure returns every class in sub's supertype/interface
// closure, including sub itself, depth-first. Used by the method
// matcher to test a target-type pattern against an invocation's
// declaring type and every ancestor, since a pattern targeting a
// supertype accepts invocations on any of its subtypes.
func SupertypeClosure(sub *Class) []*Class {
	var order []*Class
	visited := make(map[*Class]bool)
	var walk func(c *Class)
	walk = func(c *Class) {
		if c == nil || visited[c] {
			return
		}
		visited[c] = true
		order = append(order, c)
		if c.Supertype != nil {
			walk(c.Supertype)
		}
		for _, iface := range c.Interfaces {
			walk(iface)
		}
	}
	walk(sub)
	return order
}

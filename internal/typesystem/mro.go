package typesystem

// ComputeMRO fills in the method resolution order of cls. Bases are
// linearized first, then cls gets itself followed by the concatenation of
// its bases' orders in declaration order, keeping the first occurrence of
// every class.
//
// This is a depth-first linearization, not C3: with diamond inheritance a
// shared ancestor is placed after the first branch that reaches it.
func ComputeMRO(cls TClass) {
	details := cls.Details
	if details == nil || len(details.MRO) > 0 {
		return
	}

	for _, base := range details.Bases {
		if bc, ok := base.(TClass); ok {
			ComputeMRO(bc)
		}
	}

	mro := []TClass{cls.CloneAsInstantiable()}
	seen := map[*ClassDetails]bool{details: true}
	for _, base := range details.Bases {
		bc, ok := base.(TClass)
		if !ok {
			continue
		}
		for _, ancestor := range bc.Details.MRO {
			if seen[ancestor.Details] {
				continue
			}
			seen[ancestor.Details] = true
			mro = append(mro, ancestor)
		}
	}
	details.MRO = mro
}

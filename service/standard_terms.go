package service

// Plazos estándar de la industria para préstamos de auto (en meses).
// Estrictamente creciente; nunca se modifica después de init.
var standardTerms = [...]int{36, 48, 60, 72, 84}

// StandardTerms returns a copy of the industry-standard auto loan terms in
// ascending order.
func StandardTerms() []int {
	terms := make([]int, len(standardTerms))
	copy(terms, standardTerms[:])
	return terms
}

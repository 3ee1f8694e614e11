package animals

import "math/rand/v2"

const letters = "abcdefghijklmnopqrstuvwxyz"

// RandomLetter devuelve una letra a-z para el filtro "name" de la API.
func RandomLetter(rng *rand.Rand) string {
	i := rng.IntN(len(letters))
	return letters[i : i+1]
}

// Sample elige hasta count elementos distintos de list, sin reemplazo.
// Si count > len(list) devuelve toda la lista en orden aleatorio.
// count <= 0 => slice vacío. No modifica list.
func Sample(rng *rand.Rand, list []Animal, count int) []Animal {
	if count <= 0 || len(list) == 0 {
		return []Animal{}
	}

	pool := make([]Animal, len(list))
	copy(pool, list)

	n := min(count, len(pool))
	out := make([]Animal, 0, n)
	for len(out) < n {
		idx := rng.IntN(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

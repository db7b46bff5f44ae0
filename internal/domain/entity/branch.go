package entity

// Branch representa una filial (local físico con su propio alcance de productos y movimientos).
// El conjunto es fijo: se siembra al iniciar y no se modifica.
type Branch struct {
	ID   int
	Name string
}

// DefaultBranches devuelve la semilla de filiales usada por todos los backends.
func DefaultBranches() []Branch {
	return []Branch{
		{ID: 1, Name: "Lucas do Rio Verde"},
		{ID: 2, Name: "Brasnorte"},
		{ID: 3, Name: "Juara"},
	}
}

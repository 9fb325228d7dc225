package entity

// Product representa un producto del catálogo.
// No puede eliminarse mientras existan ventas que lo referencien (RESTRICT).
type Product struct {
	ID          int64
	Name        string
	Description string
}

package entity

// User representa un usuario del sistema. Email es único.
// Eliminar un usuario elimina también sus ventas (CASCADE).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}

package entity

// Company es una empresa. Code se deriva del nombre al crearla y no cambia después.
type Company struct {
	Code        string
	Name        string
	Description *string // nil = sin descripción (NULL)
}

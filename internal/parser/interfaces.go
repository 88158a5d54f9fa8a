package parser

import "io"

// Parser defines a generic interface for normalizing a TVmaze JSON payload
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}

// Package validation wraps go-playground/validator with readable error
// messages. Config structs across the library use it for their Validate
// methods via `validate:"..."` struct tags.
package validation

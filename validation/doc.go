// Package validation provides input validation for atlas registrations.
//
// Aliases are validated at registration time so configuration mistakes
// surface before any component is constructed:
//
//	if err := validation.Alias("udp-input"); err != nil { ... }
//
// Tagged config structs use the validator library directly:
//
//	type Settings struct {
//	    Env string `validate:"required"`
//	}
//	err := validation.Struct(settings)
package validation

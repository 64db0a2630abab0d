// Package validation validates configuration structs with struct tags.
//
//	type RandomConfig struct {
//	    MaxBits int `mapstructure:"max_bits" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as an INVALID_ARGUMENT *errors.AppError whose
// "fields" detail lists every offending field by its dotted mapstructure
// path (for example "random.max_bits").
package validation

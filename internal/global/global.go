// Package global holds process-wide singletons that are safe to share.
package global

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance. validator.Validate caches
// struct metadata internally and is safe for concurrent use.
var Validate = validator.New()

package config

import (
	"cmp"
	"fmt"
	"net/url"
	"strconv"
)

// Validator collects configuration errors so they can be reported together.
type Validator struct {
	errors []error
}

func NewValidator() *Validator {
	return &Validator{errors: []error{}}
}

func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, fmt.Errorf("%s: %s", field, message))
}

func (v *Validator) RequireNonEmpty(field, value string) {
	if value == "" {
		v.AddError(field, "cannot be empty")
	}
}

func (v *Validator) RequireOneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of: %v", allowed))
}

// RequireHTTPURL accepts absolute http and https URLs. Empty values are left to RequireNonEmpty.
func (v *Validator) RequireHTTPURL(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.AddError(field, "must be an absolute http(s) URL")
	}
}

// RequirePort accepts a TCP port number given as text.
func (v *Validator) RequirePort(field, value string) {
	if value == "" {
		return
	}
	port, err := strconv.Atoi(value)
	if err != nil {
		v.AddError(field, "must be a valid integer")
		return
	}
	RequireInRange(v, field, port, 1, 65535)
}

// RequireInRange checks min <= value <= max.
func RequireInRange[T cmp.Ordered](v *Validator, field string, value, min, max T) {
	if value < min || value > max {
		v.AddError(field, fmt.Sprintf("must be between %v and %v", min, max))
	}
}

func (v *Validator) Errors() []error {
	return v.errors
}

package handlers

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TargetRolePattern allows job titles such as "C++ Developer" or "UI/UX Designer (Senior)"
var TargetRolePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} .,&/()+#'-]*$`)

// Target role length bounds, in characters
const (
	minTargetRoleLength = 2
	maxTargetRoleLength = 100
)

// ValidateTargetRole checks a target role after trimming surrounding spaces
func ValidateTargetRole(fl validator.FieldLevel) bool {
	role := strings.TrimSpace(fl.Field().String())
	n := utf8.RuneCountInString(role)
	if n < minTargetRoleLength || n > maxTargetRoleLength {
		return false
	}
	return TargetRolePattern.MatchString(role)
}

// RegisterValidators registers the custom binding tags on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("target_role", ValidateTargetRole)
}

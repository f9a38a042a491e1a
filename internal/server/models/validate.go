package models

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/userdirectory/internal/common"
)

const (
	MinAge = 0
	MaxAge = 150
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Validate checks the caller-supplied fields of u. The first failing rule
// is reported as a common.ErrorInvalidData error. Store-managed fields (ID,
// timestamps) are not inspected.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return common.NewInvalidDataError("Name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return common.NewInvalidDataError("Email is required")
	}
	if !emailPattern.MatchString(u.Email) {
		return common.NewInvalidDataError("Invalid email format")
	}
	if u.Age == nil || *u.Age < MinAge || *u.Age > MaxAge {
		return common.NewInvalidDataError("Age must be between 0 and 150")
	}
	return nil
}

package validation

import (
	"regexp"
)

// Field length bounds enforced at the service boundary. They mirror
// the storage schema's column widths.
const (
	NameMinLength = 2
	NameMaxLength = 100

	UsernameMinLength = 3
	UsernameMaxLength = 50

	ModuleCodeMaxLength = 10
	ModuleNameMaxLength = 100
)

// Validation rule patterns
var (
	// EmailPattern accepts the usual local@domain.tld shape. Mixed case
	// is allowed; institutional addresses often carry uppercase locals.
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// UsernamePattern - institutional usernames, letters and digits only
	UsernamePattern = `^[A-Za-z0-9]+$`

	// ModuleCodePattern - uppercase letters and digits, e.g. CS101
	ModuleCodePattern = `^[A-Z0-9]+$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Username   *regexp.Regexp
	ModuleCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Username:   regexp.MustCompile(UsernamePattern),
	ModuleCode: regexp.MustCompile(ModuleCodePattern),
}

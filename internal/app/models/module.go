package models

// Module represents a course module offered by the university.
// A module does not change after creation; two Module values identify
// the same module when their codes match, regardless of name or the
// mandatory flag.
type Module struct {
	ID        int64  `json:"id" db:"id" example:"1"`                         // Unique identifier for the module record
	Code      string `json:"code" db:"code" example:"CS101"`                 // Short unique module code
	Name      string `json:"name" db:"name" example:"Intro to Programming"` // Display name
	Mandatory bool   `json:"mandatory" db:"mandatory" example:"true"`        // Whether the module is compulsory
}

// Equal reports whether m and other identify the same module.
// Only the code participates; name and the mandatory flag are display
// data.
func (m Module) Equal(other Module) bool {
	return m.Code == other.Code
}

package domain

const (
	NameMinLength        = 3
	NameMaxLength        = 100
	DescriptionMaxLength = 500

	// Declared business limits. Nothing enforces these yet; kept so the
	// values live next to the rest of the domain rules.
	MaxProjectsPerUser = 20
	MaxTasksPerProject = 100
)

// ValidName reports whether a project name satisfies the length bounds.
func ValidName(name string) bool {
	n := len([]rune(name))
	return n >= NameMinLength && n <= NameMaxLength
}

// ValidDescription reports whether a description satisfies the length bound.
// A nil description is always valid.
func ValidDescription(description *string) bool {
	if description == nil {
		return true
	}
	return len([]rune(*description)) <= DescriptionMaxLength
}

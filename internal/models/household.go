package models

// Member is one of the people sharing tasks and expenses.
type Member struct {
	// ID is the user ID, or the display name for configured members
	// that have not registered yet.
	ID string

	DisplayName string
}

// MemberNames returns the display names of members, keeping their order.
func MemberNames(members []Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.DisplayName
	}
	return names
}

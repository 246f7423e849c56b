package validation

// Error is a field-level validation failure whose message is safe to show
// to the user.
type Error string

func (e Error) Error() string { return string(e) }

package validation

// ValidatePassword validates a password for registration
func ValidatePassword(password string) error {
	if password == "" {
		return Error("password is required")
	}

	// Maximum length: 72 bytes (bcrypt limitation)
	// bcrypt rejects passwords longer than 72 bytes
	if len(password) > 72 {
		return Error("password must not exceed 72 characters")
	}

	return nil
}

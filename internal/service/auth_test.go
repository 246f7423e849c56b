package service

import (
	"errors"
	"testing"

	"github.com/marjuksajid/SkillChronicle/internal/validation"
)

func TestRegisterThenLogin(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("registered user has no id")
	}
	if user.PasswordHash == "pw123" || user.PasswordHash == "" {
		t.Error("password was not hashed")
	}

	loggedIn, err := auth.Login("alice", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Login returned user %q, want %q", loggedIn.ID, user.ID)
	}
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPw := auth.Login("alice", "nope")
	if !errors.Is(wrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPw)
	}

	_, unknown := auth.Login("mallory", "pw123")
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", unknown)
	}

	// Both cases must be indistinguishable to the caller
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("errors differ: %q vs %q", wrongPw, unknown)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("alice", "alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = auth.Register("alice", "fresh@x.com", "pw123")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate username error = %v, want ErrUsernameTaken", err)
	}

	_, err = auth.Register("bob", "alice@x.com", "pw123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email error = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuthService(t)

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@x.com", "pw123"},
		{"missing email", "alice", "", "pw123"},
		{"malformed email", "alice", "not-an-email", "pw123"},
		{"missing password", "alice", "a@x.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(tc.username, tc.email, tc.password)
			var vErr validation.Error
			if !errors.As(err, &vErr) {
				t.Errorf("Register error = %v, want a validation error", err)
			}
		})
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("alice", "  Alice@X.Com ", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Errorf("email = %q, want normalized %q", user.Email, "alice@x.com")
	}
}

package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"prodojo/internal/domain/account"
)

// AdminStoreForLogin defines the store interface needed by Login.
type AdminStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (account.Admin, error)
	Save(ctx context.Context, a account.Admin) error
}

// TokenIssuer signs a bearer token for an authenticated admin.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AdminStore AdminStoreForLogin
	Tokens     TokenIssuer
}

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
)

// ExecuteLogin validates credentials and returns a signed bearer token.
// PRE: Valid username and password provided
// POST: Returns a token on success, records failed login on failure
// INVARIANT: Account must not be locked
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	admin, err := deps.AdminStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	// Check if account is locked
	if admin.IsLocked() {
		slog.Info("auth_event", "event", "login_blocked", "username", input.Username, "reason", "locked")
		return LoginResult{}, ErrAccountLocked
	}

	// Verify password
	if err := admin.CheckPassword(input.Password); err != nil {
		admin.RecordFailedLogin()
		_ = deps.AdminStore.Save(ctx, admin)
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password", "failed_logins", admin.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	// Successful login resets the failed-attempt counter.
	admin.ResetFailedLogins()
	_ = deps.AdminStore.Save(ctx, admin)

	token, err := deps.Tokens.Issue(admin.Username)
	if err != nil {
		return LoginResult{}, err
	}

	slog.Info("auth_event", "event", "login_success", "username", input.Username)

	return LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

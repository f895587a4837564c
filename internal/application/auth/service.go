// Package auth provides the application layer for registration, login and
// session state
package auth

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/moodrecipe/api/internal/domain/recipe"
	"github.com/moodrecipe/api/internal/domain/user"
	"github.com/moodrecipe/api/internal/infrastructure/session"
	"github.com/moodrecipe/api/internal/ports/outbound"
	apperrors "github.com/moodrecipe/api/pkg/errors"
)

// Service implements the authentication use cases
type Service struct {
	users    outbound.UserRepository
	sessions session.Store
	hasher   PasswordHasher
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new auth service
func NewService(
	users outbound.UserRepository,
	sessions session.Store,
	hasher PasswordHasher,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger.Named("auth-service"),
	}
}

// RegisterCommand contains registration data
type RegisterCommand struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginCommand contains login data. Identifier matches either username
// or email.
type LoginCommand struct {
	Identifier string `json:"username"`
	Password   string `json:"password"`
}

// Result bundles the public user view with the session established for it
type Result struct {
	User    user.PublicView
	Session *session.Session
}

// CurrentUserResult is the authenticated-user snapshot plus the session's
// language preference
type CurrentUserResult struct {
	User     user.PublicView
	Language string
}

// Register creates a new account and establishes an authenticated session
// for it. The session is persisted before the result is returned.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*Result, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Password = strings.TrimSpace(cmd.Password)

	if err := s.validate.Struct(cmd); err != nil {
		return nil, registrationValidationError(err)
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to check existing users")
	}
	if taken {
		return nil, apperrors.NewConflictError("Username or email already exists")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to hash password")
	}

	newUser := &user.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
	}
	// The unique constraint settles concurrent registrations; the loser of
	// the race gets the same conflict error as the pre-check.
	if err := s.users.Create(ctx, newUser); err != nil {
		return nil, apperrors.Wrap(err, "Failed to create user")
	}

	sess, err := s.createSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", newUser.ID),
		zap.String("username", newUser.Username),
	)

	return &Result{User: newUser.Public(), Session: sess}, nil
}

// Login authenticates by username or email. Unknown identifier and wrong
// password fail with one identical message so callers cannot enumerate
// accounts.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*Result, error) {
	cmd.Identifier = strings.TrimSpace(cmd.Identifier)
	cmd.Password = strings.TrimSpace(cmd.Password)

	if cmd.Identifier == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("Username and password are required")
	}

	u, err := s.users.FindByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, apperrors.Wrap(err, "Failed to look up user")
	}

	if err := s.hasher.Compare(u.PasswordHash, cmd.Password); err != nil {
		s.logger.Warn("failed login attempt", zap.String("identifier", cmd.Identifier))
		return nil, apperrors.NewInvalidCredentialsError()
	}

	sess, err := s.createSession(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.Uint("user_id", u.ID))

	return &Result{User: u.Public(), Session: sess}, nil
}

// Logout destroys the session. It is idempotent: unknown and anonymous
// sessions succeed. A store failure propagates so the client is never told
// a session died while it is still live.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.NewInternalError("Failed to logout").WithCause(err)
	}

	return nil
}

// CurrentUser returns the authenticated user bound to the session along
// with its language preference.
func (s *Service) CurrentUser(ctx context.Context, sess *session.Session) (*CurrentUserResult, error) {
	if !sess.Authenticated() {
		return nil, apperrors.NewUnauthorizedError("Not authenticated")
	}

	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.Wrap(err, "Failed to look up user")
	}

	return &CurrentUserResult{User: u.Public(), Language: sess.Language}, nil
}

// SetLanguage updates the session's language preference. The write is
// confirmed persisted before the new value is reported back.
func (s *Service) SetLanguage(ctx context.Context, sess *session.Session, language string) (string, error) {
	if !sess.Authenticated() {
		return "", apperrors.NewUnauthorizedError("Not authenticated")
	}

	if !recipe.SupportedLanguage(language) {
		return "", apperrors.NewValidationError("Language must be one of: en, fr")
	}

	sess.Language = language
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", apperrors.Wrap(err, "Failed to save language preference")
	}

	s.logger.Debug("language preference updated",
		zap.Uint("user_id", sess.UserID),
		zap.String("language", language),
	)

	return language, nil
}

func (s *Service) createSession(ctx context.Context, u *user.User) (*session.Session, error) {
	sess := session.New()
	sess.UserID = u.ID
	sess.Username = u.Username

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, apperrors.Wrap(err, "Failed to create session")
	}

	return sess, nil
}

// registrationValidationError maps validator failures to the messages the
// original registration form used.
func registrationValidationError(err error) *apperrors.AppError {
	fieldErrs, _ := err.(validator.ValidationErrors)

	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			return apperrors.NewValidationError("All fields are required")
		case fe.Field() == "Password":
			return apperrors.NewValidationError("Password must be at least 6 characters")
		case fe.Field() == "Email":
			return apperrors.NewValidationError("A valid email address is required")
		}
	}

	return apperrors.NewValidationError("")
}

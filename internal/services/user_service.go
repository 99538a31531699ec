package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/baharkarakas/marina-backend/internal/auth"
	"github.com/baharkarakas/marina-backend/internal/metrics"
	"github.com/baharkarakas/marina-backend/internal/models"
	repo "github.com/baharkarakas/marina-backend/internal/repository"
	"github.com/baharkarakas/marina-backend/internal/validate"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserService struct {
	users  repo.Users
	tokens *auth.TokenManager
	cost   int
	audit  *Auditor
}

func NewUserService(u repo.Users, tm *auth.TokenManager, bcryptCost int, a *Auditor) *UserService {
	return &UserService{users: u, tokens: tm, cost: bcryptCost, audit: a}
}

// Register creates the account and opens a session for it.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (auth.Session, error) {
	username := strings.TrimSpace(in.Username)
	email := validate.NormalizeEmail(in.Email)
	if err := validate.NewUser(username, email, in.Password); err != nil {
		return auth.Session{}, err
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return auth.Session{}, models.ErrEmailTaken
	case !errors.Is(err, models.ErrNotFound):
		return auth.Session{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.cost)
	if err != nil {
		return auth.Session{}, err
	}
	u, err := s.users.Create(ctx, models.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		return auth.Session{}, err
	}
	s.audit.record(ctx, entityUser, u.ID, models.AuditCreated, map[string]any{"email": u.Email})
	return s.session(u)
}

// Login answers models.ErrInvalidCredentials for an unknown email and a wrong
// password alike.
func (s *UserService) Login(ctx context.Context, email, password string) (auth.Session, error) {
	email = validate.NormalizeEmail(email)
	var errs validate.Errs
	errs.Add(validate.Required("email", email))
	errs.Add(validate.Required("password", password))
	if err := errs.Err(); err != nil {
		return auth.Session{}, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return auth.Session{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return auth.Session{}, err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return auth.Session{}, models.ErrInvalidCredentials
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.session(u)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

// Get looks a user up by email or by id.
func (s *UserService) Get(ctx context.Context, key string) (models.User, error) {
	u, err := s.lookup(ctx, key)
	if err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

// Update changes username and/or password. The password is rehashed only when
// the patch carries one.
func (s *UserService) Update(ctx context.Context, key string, p models.UserPatch) (models.User, error) {
	if _, _, err := parseUserKey(key); err != nil {
		return models.User{}, err
	}
	if err := validate.UserPatch(p); err != nil {
		return models.User{}, err
	}
	u, err := s.lookup(ctx, key)
	if err != nil {
		return models.User{}, err
	}

	details := map[string]any{}
	if p.Username != nil {
		u.Username = strings.TrimSpace(*p.Username)
		details["username"] = u.Username
	}
	if p.Password != nil {
		hash, err := auth.HashPassword(*p.Password, s.cost)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
		details["passwordChanged"] = true
	}
	if len(details) == 0 {
		return u.Public(), nil
	}

	saved, err := s.users.Update(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	s.audit.record(ctx, entityUser, saved.ID, models.AuditUpdated, details)
	return saved.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, key string) error {
	email, id, err := parseUserKey(key)
	if err != nil {
		return err
	}
	if email != "" {
		err = s.users.DeleteByEmail(ctx, email)
	} else {
		err = s.users.Delete(ctx, id)
	}
	if err != nil {
		return err
	}
	if id == "" {
		id = email
	}
	s.audit.record(ctx, entityUser, id, models.AuditDeleted, nil)
	return nil
}

func (s *UserService) lookup(ctx context.Context, key string) (models.User, error) {
	email, id, err := parseUserKey(key)
	if err != nil {
		return models.User{}, err
	}
	if email != "" {
		return s.users.GetByEmail(ctx, email)
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) session(u models.User) (auth.Session, error) {
	token, exp, err := s.tokens.Issue(auth.Identity{UserID: u.ID, Email: u.Email, Username: u.Username})
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return auth.Session{User: u.Public(), Token: token, ExpiresAt: exp}, nil
}

// parseUserKey reads key as an email when it contains "@", as a user id
// otherwise. key may still be percent-encoded: routing works on the raw path.
func parseUserKey(key string) (email, id string, err error) {
	key, err = url.PathUnescape(key)
	if err != nil {
		return "", "", validate.Field("key", validate.RuleFormat, "invalid escape sequence")
	}
	key = strings.TrimSpace(key)
	if strings.Contains(key, "@") {
		return validate.NormalizeEmail(key), "", nil
	}
	id, ok := canonicalID(key)
	if !ok {
		return "", "", validate.Field("key", validate.RuleFormat, "must be an email or a user id")
	}
	return "", id, nil
}

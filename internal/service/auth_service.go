package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	"github.com/spec-kit/job-board-service/internal/storage"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	sessions   *auth.SessionStore
	dispatcher events.Dispatcher
	uploads    storage.Storage
	bcryptCost int
}

// NewAuthService builds the service. The signing secret and bcrypt cost come
// from explicit configuration, not ambient globals.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, sessions *auth.SessionStore, dispatcher events.Dispatcher, uploads storage.Storage) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		sessions:   sessions,
		dispatcher: dispatcher,
		uploads:    uploads,
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterInput describes the registration payload.
type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        domain.UserRole
	PhotoURL    string
}

// ProfileUpdateInput describes the profile update payload. Upload URLs are
// set only when a file accompanied the request.
type ProfileUpdateInput struct {
	FullName           string
	Email              string
	PhoneNumber        string
	Bio                string
	Skills             []string
	ResumeURL          string
	ResumeOriginalName string
}

// Register creates a new account. A duplicate email is a conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("user already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         input.Role,
		Profile: domain.Profile{
			Skills:   []string{},
			PhotoURL: input.PhotoURL,
		},
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique constraint backstops the read-then-write check above.
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("user already exists")
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		},
	})
	return user, nil
}

// Login authenticates by email and password and requires the stored role to
// match the requested one. Success issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewNotFound("user")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect password")
	}
	if user.Role != role {
		return nil, "", time.Time{}, apperrors.NewForbidden("account does not exist with the current role")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Logout revokes the presented session token.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.sessions.Revoke(ctx, tokenID, expiresAt)
}

// UpdateProfile mutates the caller's account and profile section.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	if len(input.Skills) > domain.MaxProfileSkills {
		return nil, apperrors.NewBadRequest("you can add up to 10 skills only")
	}

	if existing, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		if existing.ID != userID {
			return nil, apperrors.NewConflict("email is already in use by another account")
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	replacedResume := ""
	user.FullName = input.FullName
	user.Email = input.Email
	user.PhoneNumber = input.PhoneNumber
	user.Profile.Bio = input.Bio
	user.Profile.Skills = input.Skills
	if input.ResumeURL != "" {
		if user.Profile.ResumeURL != "" && user.Profile.ResumeURL != input.ResumeURL {
			replacedResume = user.Profile.ResumeURL
		}
		user.Profile.ResumeURL = input.ResumeURL
		user.Profile.ResumeOriginalName = input.ResumeOriginalName
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("email is already in use by another account")
		}
		return nil, err
	}

	// The replaced resume file is orphaned once the row points elsewhere.
	if replacedResume != "" && s.uploads != nil {
		_ = s.uploads.Delete(ctx, replacedResume)
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

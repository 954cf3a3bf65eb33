package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"main/dto"
	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID string) (*model.User, error)
	UpdateFields(ctx context.Context, userID string, fields bson.M) error
	RecordLogin(ctx context.Context, userID, device string) error
	SetTwoFactor(ctx context.Context, userID, secret string, enabled bool) error
	List(ctx context.Context, page, limit int) ([]*model.User, int64, error)
	Delete(ctx context.Context, userID string) (int64, error)
}

type UserService struct {
	Users    UsersRepository
	Prefs    PreferencesRepository
	Stats    StatsRepository
	Sessions FocusSessionRepository
	Meetings MeetingRepository
}

// Register creates the account and seeds the preferences and stats rows.
// Seeding is best-effort: a failure there is logged and does not fail the
// registration.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.Users.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	if existing, err := s.Users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	now := timeNow()
	user := &model.User{
		UserID:      uuid.New().String(),
		Username:    username,
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
		Role:        model.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Users.AddUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.Prefs.Insert(ctx, model.DefaultPreferences(user.UserID)); err != nil {
		utils.TrackError("registration", "preferences_seed_failed")
		log.Printf("failed to seed preferences for user %s: %v", user.UserID, err)
	}
	if err := s.Stats.Insert(ctx, model.NewUserStats(user.UserID)); err != nil {
		utils.TrackError("registration", "stats_seed_failed")
		log.Printf("failed to seed stats for user %s: %v", user.UserID, err)
	}

	return user, nil
}

// Authenticate resolves the identifier (email, or bare username looked up
// first) and verifies the password. Lookup and password failures are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*model.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	var user *model.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.Users.FindByEmail(ctx, identifier)
	} else {
		user, err = s.Users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RecordLogin stamps last-login bookkeeping. Best-effort.
func (s *UserService) RecordLogin(ctx context.Context, userID, device string) {
	if err := s.Users.RecordLogin(ctx, userID, device); err != nil {
		log.Printf("failed to record login for user %s: %v", userID, err)
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*model.User, error) {
	fields := bson.M{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if len(fields) > 0 {
		if err := s.Users.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]*model.User, int64, error) {
	return s.Users.List(ctx, page, limit)
}

// DeleteUserCascade removes the user and every row owned by them. The only
// path that touches rows across the per-user scoping boundary.
func (s *UserService) DeleteUserCascade(ctx context.Context, userID string) error {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := s.Sessions.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Meetings.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Prefs.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Stats.DeleteByUser(ctx, userID); err != nil {
		return err
	}

	deleted, err := s.Users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}

	return nil
}

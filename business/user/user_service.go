package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ngoPortal/domain"
	"ngoPortal/internal/repository/redis"
	"ngoPortal/pkg/logger"
	"ngoPortal/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	CountDistinctCampaigns(ctx context.Context, userID uint) (int64, error)
}

type DonationRepository interface {
	FindDetailsByUser(ctx context.Context, userID uint) ([]domain.DonationDetail, error)
}

type VolunteerRepository interface {
	FindDetailsByUser(ctx context.Context, userID uint) ([]domain.VolunteerDetail, error)
}

// TokenStore tracks issued tokens so logout can invalidate them.
type TokenStore interface {
	StoreToken(ctx context.Context, userID, token string, data redis.TokenData, ttl time.Duration) error
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo      UserRepository
	donationRepo  DonationRepository
	volunteerRepo VolunteerRepository
	tokenStore    TokenStore
	validate      *validator.Validate
}

const defaultProfileIcon = "👤"

var validRoles = map[string]bool{
	domain.RoleUser: true,
	domain.RoleNGO:  true,
}

func NewUserService(
	userRepo UserRepository,
	donationRepo DonationRepository,
	volunteerRepo VolunteerRepository,
	tokenStore TokenStore,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:      userRepo,
		donationRepo:  donationRepo,
		volunteerRepo: volunteerRepo,
		tokenStore:    tokenStore,
		validate:      validate,
	}
}

// Register creates the account and issues a bearer token in one step. Which
// fields are required depends on the role: NGO accounts only need name,
// email and password, regular users must also provide age, mobile and area.
func (s *userService) Register(ctx context.Context, user *domain.User) (string, domain.User, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	if !validRoles[user.Role] {
		return "", domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, user.Role)
	}

	if err := s.validate.Var(user.Name, "required"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}

	if user.Role == domain.RoleUser {
		if user.Age <= 0 || user.Mobile == "" || user.Area == "" {
			return "", domain.User{}, fmt.Errorf("%w: age, mobile and area are required for user registration", domain.ErrInvalidInput)
		}
	}

	// The unique constraint on email is authoritative; this check only gives
	// a cleaner message on the common path.
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		return "", domain.User{}, fmt.Errorf("email %w", domain.ErrConflict)
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, fmt.Errorf("failed to hash password")
	}

	if user.ProfileIcon == "" {
		user.ProfileIcon = defaultProfileIcon
	}

	newUser := domain.User{
		Name:        user.Name,
		Email:       user.Email,
		Password:    passwordHash,
		Role:        user.Role,
		Age:         user.Age,
		Mobile:      user.Mobile,
		Area:        user.Area,
		ProfileIcon: user.ProfileIcon,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return "", domain.User{}, err
	}

	token, err := s.issueToken(ctx, newUser)
	if err != nil {
		return "", domain.User{}, err
	}

	newUser.Password = ""
	return token, newUser, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password so callers cannot probe which emails are registered.
func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return "", domain.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) issueToken(ctx context.Context, user domain.User) (string, error) {
	userIDStr := strconv.FormatUint(uint64(user.ID), 10)

	token, err := utils.GenerateJWT(userIDStr, user.Role, user.Name)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", fmt.Errorf("failed to generate token")
	}

	now := time.Now()
	err = s.tokenStore.StoreToken(ctx, userIDStr, token, redis.TokenData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(utils.TokenTTL),
	}, utils.TokenTTL)
	if err != nil {
		// The JWT stays valid on its own; losing the store entry only
		// disables server-side logout for this session.
		logger.Warn("Failed to store issued token", err)
	}

	return token, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.tokenStore.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to invalidate token", err)
		return err
	}

	return nil
}

// GetProfile returns the user together with their distinct-campaign
// participation count.
func (s *userService) GetProfile(ctx context.Context, id uint) (domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}

	count, err := s.userRepo.CountDistinctCampaigns(ctx, id)
	if err != nil {
		logger.Error("Failed to count campaign participations", err)
		return domain.Profile{}, err
	}

	user.Password = ""
	return domain.Profile{
		User:                       user,
		CampaignParticipationCount: count,
	}, nil
}

// GetParticipations returns the user's itemized donations and volunteer
// applications, each joined with campaign and NGO, newest first.
func (s *userService) GetParticipations(ctx context.Context, id uint) (domain.Participations, error) {
	donations, err := s.donationRepo.FindDetailsByUser(ctx, id)
	if err != nil {
		logger.Error("Failed to fetch donation details", err)
		return domain.Participations{}, err
	}

	volunteers, err := s.volunteerRepo.FindDetailsByUser(ctx, id)
	if err != nil {
		logger.Error("Failed to fetch volunteer details", err)
		return domain.Participations{}, err
	}

	if donations == nil {
		donations = []domain.DonationDetail{}
	}
	if volunteers == nil {
		volunteers = []domain.VolunteerDetail{}
	}

	return domain.Participations{
		Donations:  donations,
		Volunteers: volunteers,
	}, nil
}

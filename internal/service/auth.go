package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/makarov-dev/movierec/internal/adapter"
	"github.com/makarov-dev/movierec/internal/config"
	"github.com/makarov-dev/movierec/internal/logger"
	"github.com/makarov-dev/movierec/internal/store"
	"github.com/makarov-dev/movierec/internal/utils"
	"github.com/makarov-dev/movierec/models"
)

// authService is the concrete implementation of AuthService. It handles
// signup, credential verification and the JWT token lifecycle. Signup also
// registers the user with the remote recommendation service: the external
// key it returns is what every later sync and feedback call is keyed on.
type authService struct {
	profiles store.ProfileRepository
	remote   adapter.RemoteCatalog

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the profile repository
// and the remote catalog gateway, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(profiles store.ProfileRepository, remote adapter.RemoteCatalog, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		profiles:      profiles,
		remote:        remote,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// SignUp implements AuthService.
//
// The user is registered with the remote recommendation service first; only
// when that returns an external key is the local profile persisted. A
// failure between the two calls leaves a remote user with no local profile,
// which the next reconciliation pass turns into a placeholder profile.
//
// Returns ErrInvalidDataProvided on missing credentials, or a wrapped
// storage error (e.g. store.ErrProfileAlreadyExists) if persistence fails.
func (a *authService) SignUp(ctx context.Context, request models.SignupRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Str("email", request.Email).Msg("invalid signup data provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	age := request.Age
	if age < MinAge || age > MaxAge {
		age = DefaultAge
	}
	gender := "F"
	if request.Gender == "M" {
		gender = "M"
	}
	occupation := request.Occupation
	if _, ok := validOccupations[strings.ToLower(occupation)]; !ok {
		occupation = "other"
	}
	zipCode := request.ZipCode
	if zipCode == "" {
		zipCode = DefaultZipCode
	}

	mlUserID, err := a.remote.CreateUser(ctx, models.RemoteUserCreate{
		Age:        age,
		Gender:     gender,
		Occupation: occupation,
		ZipCode:    zipCode,
	})
	if err != nil {
		log.Err(err).Msg("remote user registration failed")
		return models.Profile{}, fmt.Errorf("register user with remote service: %w", err)
	}

	profile, err := a.profiles.CreateProfile(ctx, models.Profile{
		MLUserID:     mlUserID,
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(hash),
		Age:          age,
		Gender:       gender,
		Occupation:   occupation,
		ZipCode:      zipCode,
	})
	if err != nil {
		log.Err(err).Int64("mlUserID", mlUserID).Msg("profile creation failed")
		return models.Profile{}, fmt.Errorf("profile creation failed: %w", err)
	}

	return profile, nil
}

// SignIn implements AuthService.
//
// Returns ErrInvalidDataProvided on missing credentials, a wrapped storage
// error when the lookup fails (e.g. store.ErrProfileNotFound), or
// ErrWrongPassword when the bcrypt comparison fails.
func (a *authService) SignIn(ctx context.Context, request models.SigninRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid signin data provided")
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := a.profiles.FindProfileByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("profile search by email failed")
		return models.Profile{}, fmt.Errorf("profile search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().Int64("profileID", profile.ProfileID).Str("email", request.Email).Msg("wrong password")
		return models.Profile{}, ErrWrongPassword
	}

	return profile, nil
}

// CreateToken issues a signed JWT for the given profile.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, profile models.Profile) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, profile.ProfileID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pluma/config"
	deliverycontext "pluma/internal/delivery/context"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/domain/service"
	"pluma/internal/usecase"
	"pluma/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	credentialRepo    repository.CredentialRepository
	profileRepo       repository.ProfileRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	broker            service.SessionBroker
	publisher         service.EventPublisher
	minPasswordLength int
	resetTokenTTL     time.Duration
	adminEmails       map[string]struct{}
	publicBaseURL     string
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	CredentialRepo   repository.CredentialRepository
	ProfileRepo      repository.ProfileRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Broker           service.SessionBroker
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:         params.TxManager,
		credentialRepo:    params.CredentialRepo,
		profileRepo:       params.ProfileRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		broker:            params.Broker,
		publisher:         params.Publisher,
		minPasswordLength: defaultMinPasswordLength,
		resetTokenTTL:     30 * time.Minute,
		adminEmails:       map[string]struct{}{},
		now:               time.Now,
		logger:            params.Logger,
	}

	if params.Config == nil {
		return srv
	}

	srv.publicBaseURL = strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/")
	if auth := params.Config.Auth; auth != nil {
		if auth.MinPasswordLength > 0 {
			srv.minPasswordLength = auth.MinPasswordLength
		}
		if auth.ResetTokenTTL > 0 {
			srv.resetTokenTTL = auth.ResetTokenTTL
		}
		for _, email := range auth.AdminEmails {
			srv.adminEmails[normalizeEmail(email)] = struct{}{}
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// SignUp creates the profile and the credential together.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Profile, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-up", slog.String("email", email))

	if err := srv.checkNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		ID:       uuid.New(),
		Email:    email,
		FullName: strings.TrimSpace(input.FullName),
	}
	if strings.TrimSpace(input.Username) != "" {
		username, ok := entity.NormalizeUsername(input.Username)
		if !ok {
			return nil, errors.WithStack(domainerrors.ErrInvalidUsername)
		}
		profile.Username = &username
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return errors.Wrap(err, "failed to create profile")
		}

		credential := &entity.Credential{
			UserID:       profile.ID,
			Email:        email,
			PasswordHash: passwordHash,
			FullName:     profile.FullName,
		}
		if err := repoFactory.CredentialRepo().Create(ctx, credential); err != nil {
			if errors.Is(err, repository.ErrEmailAlreadyExists) {
				return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
			}

			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign-up failed")
	}

	srv.log(ctx).Info("Reader signed up", slog.Any("user_id", profile.ID))

	return profile, nil
}

// SignIn checks the password and opens a new session.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)

	credential, err := srv.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.String("reason", "wrong password"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	output, err := srv.openSession(ctx, srv.refreshTokenRepo, credential)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		srv.log(ctx).Warn("Signed in without profile", slog.Any("user_id", credential.UserID), slog.Any("error", err))
	}
	output.Profile = profile

	srv.publishSessionEvent(entity.SessionSignedIn, credential.UserID)
	srv.log(ctx).Info("Reader signed in", slog.Any("user_id", credential.UserID))

	return output, nil
}

// RefreshSession exchanges a valid refresh token for a new token pair.
func (srv *authService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.SignInOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var output *usecase.SignInOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		tokenHash := util.HashToken(refreshToken)

		// 1. The token must still be on record
		if _, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		// 2. Rotate: the old token is single use
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		credential, err := repoFactory.CredentialRepo().FindByUserID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return errors.Wrap(err, "failed to load credential")
		}

		output, err = srv.openSession(ctx, refreshRepo, credential)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("user_id", claims.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	srv.publishSessionEvent(entity.SessionTokenRefreshed, claims.UserID)

	return output, nil
}

// SignOut revokes the refresh token and notifies the reader's other tabs.
func (srv *authService) SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if refreshToken != "" {
		if userID == uuid.Nil {
			if claims, err := srv.tokenService.ValidateRefreshToken(refreshToken); err == nil {
				userID = claims.UserID
			}
		}

		err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, util.HashToken(refreshToken))
		if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to revoke refresh token")
		}
	}

	if userID != uuid.Nil {
		srv.publishSessionEvent(entity.SessionSignedOut, userID)
		srv.log(ctx).Info("Reader signed out", slog.Any("user_id", userID))
	}

	return nil
}

// CurrentSession resolves the access token into a session.
func (srv *authService) CurrentSession(ctx context.Context, accessToken string) entity.Session {
	if accessToken == "" {
		return entity.Session{}
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Treating request as anonymous", slog.Any("error", err))

		return entity.Session{}
	}

	return entity.Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}
}

// RequestPasswordReset issues a reset link when the email is registered.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	credential, err := srv.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))
		} else {
			srv.log(ctx).Error("Failed to look up credential for reset", slog.String("email", email), slog.Any("error", err))
		}

		return nil
	}

	token, err := srv.tokenService.GenerateResetToken(credential.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("user_id", credential.UserID), slog.Any("error", err))

		return nil
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventTypePasswordResetRequested,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     credential.UserID,
		OccurredAt: srv.now().UTC(),
		Payload: service.PasswordResetPayload{
			Email:     credential.Email,
			ResetLink: srv.resetLink(token),
			ExpiresAt: srv.now().Add(srv.resetTokenTTL).UTC(),
		},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish password reset", slog.Any("user_id", credential.UserID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Password reset link issued",
		slog.Any("user_id", credential.UserID),
		slog.String("valid_for", util.FormatDuration(srv.resetTokenTTL)),
	)

	return nil
}

// ResetPassword sets a new password from a reset link.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateResetToken(input.Token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, err.Error())
	}

	return srv.changePassword(ctx, claims.UserID, input.Password, input.ConfirmPassword)
}

// UpdatePassword sets a new password for the signed-in reader.
func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, input usecase.UpdatePasswordInput) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	return srv.changePassword(ctx, userID, input.Password, input.ConfirmPassword)
}

// SubscribeSessionEvents opens a live feed of the reader's session changes.
func (srv *authService) SubscribeSessionEvents(userID uuid.UUID) service.Subscription {
	return srv.broker.Subscribe(userID)
}

// PurgeExpiredSessions deletes refresh tokens past their expiry.
func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions purged", slog.Int64("removed", removed))
	}

	return removed, nil
}

// changePassword stores the new hash and revokes every session of the reader.
func (srv *authService) changePassword(ctx context.Context, userID uuid.UUID, password, confirm string) error {
	if err := srv.checkNewPassword(password, confirm); err != nil {
		return err
	}

	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CredentialRepo().UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("user_id", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}

	srv.publishSessionEvent(entity.SessionPasswordUpdated, userID)
	srv.log(ctx).Info("Password changed", slog.Any("user_id", userID))

	return nil
}

func (srv *authService) checkNewPassword(password, confirm string) error {
	if password != confirm {
		return errors.WithStack(domainerrors.ErrPasswordMismatch)
	}
	if len([]rune(password)) < srv.minPasswordLength {
		return domainerrors.ErrPasswordTooShort.WithDetails("mínimo de " + strconv.Itoa(srv.minPasswordLength) + " caracteres")
	}

	return nil
}

// openSession issues a token pair and records the refresh token hash.
func (srv *authService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, credential *entity.Credential) (*usecase.SignInOutput, error) {
	roles := srv.rolesFor(credential.Email)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(credential.UserID, credential.Email, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    credential.UserID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session: entity.Session{
			UserID: credential.UserID,
			Email:  credential.Email,
			Roles:  roles,
		},
	}, nil
}

func (srv *authService) rolesFor(email string) entity.Roles {
	_, admin := srv.adminEmails[normalizeEmail(email)]

	return entity.AccountRoles(admin)
}

func (srv *authService) publishSessionEvent(eventType entity.SessionEventType, userID uuid.UUID) {
	srv.broker.Publish(entity.SessionEvent{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: srv.now().UTC(),
	})
}

func (srv *authService) resetLink(token string) string {
	return srv.publicBaseURL + "/reset-password?token=" + url.QueryEscape(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

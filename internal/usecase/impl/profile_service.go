package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"pluma/config"
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

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo    repository.ProfileRepository
	entitlements   usecase.EntitlementUsecase
	storage        service.ObjectStorage
	maxAvatarBytes int64
	now            func() time.Time
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	Entitlements usecase.EntitlementUsecase
	Storage      service.ObjectStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxAvatarBytes := int64(1 << 20)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxAvatarBytes > 0 {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &profileService{
		profileRepo:    params.ProfileRepo,
		entitlements:   params.Entitlements,
		storage:        params.Storage,
		maxAvatarBytes: maxAvatarBytes,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// GetProfile returns the account data together with the books the reader owns.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	profile, err := srv.findProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := srv.entitlements.OwnedProducts(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load owned books for profile", slog.Any("user_id", userID), slog.Any("error", err))
		owned = []*entity.Product{}
	}

	return &usecase.ProfileOutput{
		Profile:    profile,
		OwnedBooks: owned,
	}, nil
}

// UpdateUsername sets the reader's public handle.
func (srv *profileService) UpdateUsername(ctx context.Context, userID uuid.UUID, raw string) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	username, ok := entity.NormalizeUsername(raw)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidUsername)
	}

	if err := srv.profileRepo.UpdateUsername(ctx, userID, username); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, errors.WithStack(domainerrors.ErrUsernameTaken)
		case errors.Is(err, repository.ErrProfileNotFound):
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		default:
			return nil, errors.Wrap(err, "failed to update username")
		}
	}

	srv.log(ctx).Info("Username updated", slog.Any("user_id", userID), slog.String("username", username))

	return srv.findProfile(ctx, userID)
}

// UploadAvatar stores the image and points the profile at it.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, upload usecase.AvatarUpload) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	ext, ok := avatarExtensions[upload.ContentType]
	if !ok || upload.Content == nil {
		return nil, errors.WithStack(domainerrors.ErrAvatarInvalid)
	}
	if ext == ".jpg" && util.FileExtension(upload.Filename) == ".jpeg" {
		ext = ".jpeg"
	}

	if upload.Size > srv.maxAvatarBytes {
		return nil, srv.tooLarge()
	}

	// The declared size can lie, so read one byte past the limit to catch it.
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(upload.Content, srv.maxAvatarBytes+1))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAvatarInvalid, err.Error())
	}
	if n > srv.maxAvatarBytes {
		return nil, srv.tooLarge()
	}

	key := constants.AvatarPrefix + userID.String() + "-" + strconv.FormatInt(srv.now().Unix(), 10) + ext

	avatarURL, err := srv.storage.Put(ctx, key, upload.ContentType, &buf)
	if err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.Any("user_id", userID), slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	if err := srv.profileRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("key", key), slog.Any("error", delErr))
		}
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to save avatar url")
	}

	srv.log(ctx).Info("Avatar uploaded",
		slog.Any("user_id", userID),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(n)),
	)

	return srv.findProfile(ctx, userID)
}

func (srv *profileService) findProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

func (srv *profileService) tooLarge() error {
	return domainerrors.ErrAvatarTooLarge.WithDetails("limite de " + util.FormatBytes(srv.maxAvatarBytes))
}

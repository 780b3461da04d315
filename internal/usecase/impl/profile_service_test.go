package impl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"pluma/config"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	mockRepo "pluma/internal/mocks/repository"
	mockSvc "pluma/internal/mocks/service"
	mockUsecase "pluma/internal/mocks/usecase"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service      *profileService
	profileRepo  *mockRepo.MockProfileRepository
	entitlements *mockUsecase.MockEntitlementUsecase
	storage      *mockSvc.MockObjectStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	entitlements := mockUsecase.NewMockEntitlementUsecase(t)
	storage := mockSvc.NewMockObjectStorage(t)

	srv := NewProfileService(ProfileServiceParams{
		ProfileRepo:  profileRepo,
		Entitlements: entitlements,
		Storage:      storage,
		Config:       &config.Config{Storage: &config.StorageConfig{MaxAvatarBytes: 16}},
		Logger:       discardLogger(),
	}).(*profileService)
	srv.now = func() time.Time { return time.Unix(1700000000, 0) }

	return profileServiceFixtures{
		service:      srv,
		profileRepo:  profileRepo,
		entitlements: entitlements,
		storage:      storage,
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, Email: "ana@pluma.com.br"}, nil)
	fx.entitlements.EXPECT().OwnedProducts(ctx, userID).Return([]*entity.Product{{ID: 7}}, nil)

	out, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "ana@pluma.com.br", out.Profile.Email)
	assert.Len(t, out.OwnedBooks, 1)
}

func TestProfileService_GetProfile_OwnedBooksFailureDegrades(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID}, nil)
	fx.entitlements.EXPECT().OwnedProducts(ctx, userID).Return(nil, errors.New("timeout"))

	out, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, out.OwnedBooks)
	assert.Empty(t, out.OwnedBooks)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateUsername(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("normalized and saved", func(t *testing.T) {
		fx := createTestProfileService(t)
		username := "leitora_voraz"
		fx.profileRepo.EXPECT().UpdateUsername(ctx, userID, username).Return(nil)
		fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, Username: &username}, nil)

		profile, err := fx.service.UpdateUsername(ctx, userID, "  Leitora_Voraz ")

		require.NoError(t, err)
		assert.Equal(t, username, profile.UsernameOrEmpty())
	})

	t.Run("taken", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.profileRepo.EXPECT().UpdateUsername(ctx, userID, "ana").Return(repository.ErrUsernameTaken)

		_, err := fx.service.UpdateUsername(ctx, userID, "ana")

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("invalid", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateUsername(ctx, userID, "no")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
	})
}

func TestProfileService_UploadAvatar(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	wantKey := "avatars/" + userID.String() + "-1700000000.png"
	avatarURL := "https://cdn.pluma.example/" + wantKey

	fx.storage.EXPECT().Put(ctx, wantKey, "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ string, r io.Reader) (string, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(body))

			return avatarURL, nil
		})
	fx.profileRepo.EXPECT().UpdateAvatarURL(ctx, userID, avatarURL).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, AvatarURL: avatarURL}, nil)

	profile, err := fx.service.UploadAvatar(ctx, userID, usecase.AvatarUpload{
		Filename:    "me.PNG",
		ContentType: "image/png",
		Size:        9,
		Content:     strings.NewReader("png-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, avatarURL, profile.AvatarURL)
}

func TestProfileService_UploadAvatar_Rejected(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		upload  usecase.AvatarUpload
		wantErr error
	}{
		{
			name:    "unsupported type",
			upload:  usecase.AvatarUpload{ContentType: "application/pdf", Content: strings.NewReader("x")},
			wantErr: domainerrors.ErrAvatarInvalid,
		},
		{
			name:    "declared too large",
			upload:  usecase.AvatarUpload{ContentType: "image/png", Size: 17, Content: strings.NewReader("x")},
			wantErr: domainerrors.ErrAvatarTooLarge,
		},
		{
			name:    "actually too large",
			upload:  usecase.AvatarUpload{ContentType: "image/png", Size: 1, Content: bytes.NewReader(make([]byte, 32))},
			wantErr: domainerrors.ErrAvatarTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadAvatar(ctx, userID, tt.upload)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_UploadAvatar_RemovesObjectWhenProfileUpdateFails(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	wantKey := "avatars/" + userID.String() + "-1700000000.jpeg"

	fx.storage.EXPECT().Put(ctx, wantKey, "image/jpeg", mock.Anything).Return("/"+wantKey, nil)
	fx.profileRepo.EXPECT().UpdateAvatarURL(ctx, userID, "/"+wantKey).Return(repository.ErrProfileNotFound)
	fx.storage.EXPECT().Delete(ctx, wantKey).Return(nil)

	_, err := fx.service.UploadAvatar(ctx, userID, usecase.AvatarUpload{
		Filename:    "foto.jpeg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpg"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UploadAvatar_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.storage.EXPECT().Put(ctx, mock.Anything, "image/webp", mock.Anything).Return("", errors.New("bucket gone"))

	_, err := fx.service.UploadAvatar(ctx, userID, usecase.AvatarUpload{
		Filename:    "a.webp",
		ContentType: "image/webp",
		Content:     strings.NewReader("webp"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

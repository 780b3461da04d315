package usecase

import (
	"context"
	"io"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput is the profile page: account data plus the reader's books.
type ProfileOutput struct {
	Profile    *entity.Profile
	OwnedBooks []*entity.Product
}

// AvatarUpload is a multipart file handed over by the delivery layer.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*entity.Profile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, upload AvatarUpload) (*entity.Profile, error)
}

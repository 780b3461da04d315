package postgres

import (
	"context"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by id.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProfileDomain(&profileM), nil
}

// UpdateUsername sets the username of a profile.
func (repo *profileRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("username", username)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update username")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateAvatarURL sets the avatar of a profile.
func (repo *profileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update avatar")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		FullName:  data.FullName,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"strings"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Omit("Profile").Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("credential without profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindByEmail retrieves a credential by email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCredentialDomain(&credentialM), nil
}

// FindByUserID retrieves a credential by user id.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCredentialDomain(&credentialM), nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *credentialRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		UserID:       data.UserID,
		Email:        strings.ToLower(strings.TrimSpace(data.Email)),
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

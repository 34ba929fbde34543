package postgres

import (
	"context"

	"stargaze/internal/domain/entity"
	domainerrors "stargaze/internal/domain/errors"
	"stargaze/internal/domain/repository"
	"stargaze/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// astrologerRepository implements the domain.AstrologerRepository interface using GORM.
type astrologerRepository struct {
	db *gorm.DB
}

// NewAstrologerRepository is the constructor for astrologerRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAstrologerRepository(db *gorm.DB) repository.AstrologerRepository {
	return &astrologerRepository{db: db}
}

// FindByEmail retrieves a single astrologer by email. Emails are matched exactly.
func (repo *astrologerRepository) FindByEmail(ctx context.Context, email string) (*entity.Astrologer, error) {
	var astrologerM model.AstrologerModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&astrologerM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAstrologerNotFound
		}

		return nil, errors.Wrap(err, "failed to find astrologer by email")
	}

	return toAstrologerDomain(&astrologerM), nil
}

// Create persists a new astrologer entity as a single insert.
func (repo *astrologerRepository) Create(ctx context.Context, astrologer *entity.Astrologer) error {
	astrologerM := fromAstrologerDomain(astrologer)

	if err := repo.db.WithContext(ctx).Create(astrologerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("astrologer email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required astrologer information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create astrologer")
	}

	// Update the entity with the generated ID and timestamps
	astrologer.ID = astrologerM.ID
	astrologer.CreatedAt = astrologerM.CreatedAt
	astrologer.UpdatedAt = astrologerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAstrologerDomain(data *model.AstrologerModel) *entity.Astrologer {
	if data == nil {
		return nil
	}

	return &entity.Astrologer{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		MobileNumber:    data.MobileNumber,
		AadharNumber:    data.AadharNumber,
		DOB:             data.DOB,
		Gender:          data.Gender,
		ExperienceYears: data.ExperienceYears,
		LanguagesKnown:  data.LanguagesKnown,
		Skills:          data.Skills,
		Email:           data.Email,
		ProfilePhoto:    data.ProfilePhoto,
		District:        data.District,
		Country:         data.Country,
		PinCode:         data.PinCode,
		RatePerMin:      data.RatePerMin,
		PasswordHash:    data.PasswordHash,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromAstrologerDomain(data *entity.Astrologer) *model.AstrologerModel {
	if data == nil {
		return nil
	}

	return &model.AstrologerModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		MobileNumber:    data.MobileNumber,
		AadharNumber:    data.AadharNumber,
		DOB:             data.DOB,
		Gender:          data.Gender,
		ExperienceYears: data.ExperienceYears,
		LanguagesKnown:  data.LanguagesKnown,
		Skills:          data.Skills,
		Email:           data.Email,
		ProfilePhoto:    data.ProfilePhoto,
		District:        data.District,
		Country:         data.Country,
		PinCode:         data.PinCode,
		RatePerMin:      data.RatePerMin,
		PasswordHash:    data.PasswordHash,
	}
}

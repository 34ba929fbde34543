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

// clientRepository implements the domain.ClientRepository interface using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// FindByEmail retrieves a single client by email. Emails are matched exactly.
func (repo *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&clientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by email")
	}

	return toClientDomain(&clientM), nil
}

// Create persists a new client entity as a single insert.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("client email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		DOB:          data.DOB,
		City:         data.City,
		Birthplace:   data.Birthplace,
		MobileNumber: data.MobileNumber,
		BirthTime:    data.BirthTime,
		Gender:       data.Gender,
		Email:        data.Email,
		State:        data.State,
		Country:      data.Country,
		District:     data.District,
		PinCode:      data.PinCode,
		ProfilePhoto: data.ProfilePhoto,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		DOB:          data.DOB,
		City:         data.City,
		Birthplace:   data.Birthplace,
		MobileNumber: data.MobileNumber,
		BirthTime:    data.BirthTime,
		Gender:       data.Gender,
		Email:        data.Email,
		State:        data.State,
		Country:      data.Country,
		District:     data.District,
		PinCode:      data.PinCode,
		ProfilePhoto: data.ProfilePhoto,
		PasswordHash: data.PasswordHash,
	}
}

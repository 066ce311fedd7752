package usecase

import (
	"time"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

// SettingsUseCase gestiona el singleton de configuración de la organización.
// El registro se crea de forma perezosa en la primera actualización y después
// se fusiona campo a campo.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual; (nil, nil) si nunca se guardó.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}
	return toSettingsResponse(settings), nil
}

// Update fusiona los campos presentes sobre el registro almacenado, creándolo
// si todavía no existe.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{}
	}
	if in.CompanyName != nil {
		settings.CompanyName = *in.CompanyName
	}
	if in.TaxNumber != nil {
		settings.TaxNumber = *in.TaxNumber
	}
	if in.Address != nil {
		settings.Address = *in.Address
	}
	if in.Email != nil {
		settings.Email = *in.Email
	}
	if in.Phone != nil {
		settings.Phone = *in.Phone
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.InvoicePrefix != nil {
		settings.InvoicePrefix = *in.InvoicePrefix
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		CompanyName:   s.CompanyName,
		TaxNumber:     s.TaxNumber,
		Address:       s.Address,
		Email:         s.Email,
		Phone:         s.Phone,
		Currency:      s.Currency,
		InvoicePrefix: s.InvoicePrefix,
	}
}

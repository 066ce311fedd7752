package repository

import "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para el singleton Settings.
// Get devuelve (nil, nil) mientras no se haya guardado nada; Save reemplaza el
// registro completo (la fusión parcial vive en el caso de uso).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}

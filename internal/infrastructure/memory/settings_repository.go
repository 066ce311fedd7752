package memory

import (
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/entity"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación en memoria del singleton Settings.
type SettingsRepo struct {
	store *Store
}

// NewSettingsRepository construye el adaptador sobre el almacén compartido.
func NewSettingsRepository(s *Store) *SettingsRepo {
	return &SettingsRepo{store: s}
}

// Get devuelve (nil, nil) mientras no se haya guardado configuración.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	r.store.settingsMu.RLock()
	defer r.store.settingsMu.RUnlock()
	if r.store.settings == nil {
		return nil, nil
	}
	s := *r.store.settings
	return &s, nil
}

// Save reemplaza el registro singleton completo.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	r.store.settingsMu.Lock()
	defer r.store.settingsMu.Unlock()
	s := *settings
	r.store.settings = &s
	return nil
}

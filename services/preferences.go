package services

import (
	"sync"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference defaults for accounts without a stored row.
const (
	DefaultCurrency = "EUR"
	DefaultLanguage = "fr"
	DefaultTheme    = "light"
)

// PreferenceRepository abstracts preference persistence so the store can be
// exercised against an in-memory fake in tests.
type PreferenceRepository interface {
	FindByUserID(userID int) (*models.UserPreferences, error)
	Upsert(prefs *models.UserPreferences) error
}

type gormPreferenceRepository struct{}

func (r *gormPreferenceRepository) FindByUserID(userID int) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := config.DB.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *gormPreferenceRepository) Upsert(prefs *models.UserPreferences) error {
	now := time.Now()
	prefs.UpdateAt = &now
	if prefs.CreateAt == nil {
		prefs.CreateAt = &now
	}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"currency", "language", "theme", "update_at"}),
	}).Create(prefs).Error
}

// NewGormPreferenceRepository returns the production repository backed by
// config.DB.
func NewGormPreferenceRepository() PreferenceRepository {
	return &gormPreferenceRepository{}
}

// PreferenceUpdate carries a partial preference change; nil fields are left
// untouched.
type PreferenceUpdate struct {
	Currency *string `json:"currency"`
	Language *string `json:"language"`
	Theme    *string `json:"theme"`
}

// PreferenceStore holds the preferences of one account and keeps the
// in-memory copy consistent with the repository: updates apply locally first,
// then persist, and roll back when persistence fails.
type PreferenceStore struct {
	mu     sync.RWMutex
	repo   PreferenceRepository
	userID int
	prefs  models.UserPreferences
}

// NewPreferenceStore loads the account's preferences, falling back to the
// EUR/fr/light defaults when no row exists.
func NewPreferenceStore(repo PreferenceRepository, userID int) (*PreferenceStore, error) {
	store := &PreferenceStore{repo: repo, userID: userID}

	prefs, err := repo.FindByUserID(userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		store.prefs = models.UserPreferences{
			UserID:   userID,
			Currency: DefaultCurrency,
			Language: DefaultLanguage,
			Theme:    DefaultTheme,
		}
		return store, nil
	}

	store.prefs = *prefs
	return store, nil
}

// Current returns a copy of the in-memory preferences.
func (s *PreferenceStore) Current() models.UserPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Update applies a partial change optimistically: snapshot, apply locally,
// persist. On persistence failure the snapshot is restored and the error
// returned to the caller, who owns the user-facing messaging.
func (s *PreferenceStore) Update(update PreferenceUpdate) (models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.prefs

	if update.Currency != nil {
		s.prefs.Currency = *update.Currency
	}
	if update.Language != nil {
		s.prefs.Language = *update.Language
	}
	if update.Theme != nil {
		s.prefs.Theme = *update.Theme
	}

	persisted := s.prefs
	persisted.UserID = s.userID
	if err := s.repo.Upsert(&persisted); err != nil {
		s.prefs = snapshot
		return snapshot, err
	}

	s.prefs = persisted
	return s.prefs, nil
}

// FormatAmount renders an amount with the store's current currency and
// language.
func (s *PreferenceStore) FormatAmount(amount float64) string {
	prefs := s.Current()
	return utils.FormatAmount(amount, prefs.Currency, prefs.Language)
}

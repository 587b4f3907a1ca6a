package services

import (
	"errors"
	"testing"

	"gestibud-api/models"

	"gorm.io/gorm"
)

type fakePreferenceRepository struct {
	stored    *models.UserPreferences
	upsertErr error
	upserts   int
}

func (r *fakePreferenceRepository) FindByUserID(userID int) (*models.UserPreferences, error) {
	if r.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	prefs := *r.stored
	return &prefs, nil
}

func (r *fakePreferenceRepository) Upsert(prefs *models.UserPreferences) error {
	r.upserts++
	if r.upsertErr != nil {
		return r.upsertErr
	}
	stored := *prefs
	r.stored = &stored
	return nil
}

func TestPreferenceStoreDefaults(t *testing.T) {
	store, err := NewPreferenceStore(&fakePreferenceRepository{}, 1)
	if err != nil {
		t.Fatalf("NewPreferenceStore returned error: %v", err)
	}

	prefs := store.Current()
	if prefs.Currency != "EUR" || prefs.Language != "fr" || prefs.Theme != "light" {
		t.Fatalf("expected EUR/fr/light defaults, got %+v", prefs)
	}
}

func TestPreferenceStoreUpdatePersists(t *testing.T) {
	repo := &fakePreferenceRepository{}
	store, err := NewPreferenceStore(repo, 1)
	if err != nil {
		t.Fatalf("NewPreferenceStore returned error: %v", err)
	}

	currency := "USD"
	updated, err := store.Update(PreferenceUpdate{Currency: &currency})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Currency != "USD" || updated.Language != "fr" {
		t.Fatalf("partial update must only touch provided fields, got %+v", updated)
	}
	if repo.stored == nil || repo.stored.Currency != "USD" {
		t.Fatalf("update must persist through the repository")
	}
}

func TestPreferenceStoreRollsBackOnFailure(t *testing.T) {
	repo := &fakePreferenceRepository{upsertErr: errors.New("connection lost")}
	store, err := NewPreferenceStore(repo, 1)
	if err != nil {
		t.Fatalf("NewPreferenceStore returned error: %v", err)
	}

	currency := "USD"
	_, err = store.Update(PreferenceUpdate{Currency: &currency})
	if err == nil {
		t.Fatalf("Update must propagate the persistence failure")
	}

	if got := store.Current().Currency; got != "EUR" {
		t.Fatalf("failed update must leave the pre-call currency, got %q", got)
	}
	if repo.upserts != 1 {
		t.Fatalf("no retry expected, got %d upsert attempts", repo.upserts)
	}
}

func TestPreferenceStoreFormatAmount(t *testing.T) {
	store, err := NewPreferenceStore(&fakePreferenceRepository{}, 1)
	if err != nil {
		t.Fatalf("NewPreferenceStore returned error: %v", err)
	}

	if got := store.FormatAmount(12500); got != "12 500,00 €" {
		t.Fatalf("unexpected formatted amount %q", got)
	}
}

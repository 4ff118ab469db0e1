package session

import (
	"errors"

	"gorm.io/gorm"
)

// Store persists the session token and UI preferences between runs, the way
// the browser client keeps them in localStorage.
type Store struct {
	db *gorm.DB
}

type sessionRecord struct {
	ID    int64 `gorm:"primaryKey"`
	Token string
}

type Preferences struct {
	ID                 int64  `gorm:"primaryKey" json:"-"`
	PageSize           int    `json:"page_size"`
	LastSearchQuery    string `json:"last_search_query"`
	LastCategoryID     int64  `json:"last_category_id"`
	EmailNotifications bool   `json:"email_notifications"`
}

func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&sessionRecord{}, &Preferences{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) LoadToken() (string, error) {
	var rec sessionRecord
	err := s.db.First(&rec, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Token, nil
}

func (s *Store) SaveToken(token string) error {
	rec := sessionRecord{ID: 1, Token: token}
	return s.db.Save(&rec).Error
}

func (s *Store) ClearToken() error {
	return s.db.Delete(&sessionRecord{}, 1).Error
}

func (s *Store) LoadPreferences() (*Preferences, error) {
	var p Preferences
	err := s.db.First(&p, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first run: defaults match the service grid
		return &Preferences{ID: 1, PageSize: 12, EmailNotifications: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SavePreferences(p *Preferences) error {
	p.ID = 1
	return s.db.Save(p).Error
}

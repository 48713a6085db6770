package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"pasar/internal/models"
)

// SessionRepository defines the interface for the web-session store.
type SessionRepository interface {
	Get(sid string) (*models.Session, error)
	Save(session *models.Session) error
	Delete(sid string) error
	DeleteExpired(now time.Time) (int64, error)
}

// GORMSessionRepository is a GORM implementation of SessionRepository.
type GORMSessionRepository struct {
	db *gorm.DB
}

// NewGORMSessionRepository creates a new instance of GORMSessionRepository.
func NewGORMSessionRepository(db *gorm.DB) *GORMSessionRepository {
	return &GORMSessionRepository{db: db}
}

// Get retrieves a session by its ID. An expired session is reported as a
// miss, same as an absent one.
func (r *GORMSessionRepository) Get(sid string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "sid = ?", sid).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session %s not found", sid)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sid, err)
	}
	if session.Expired(time.Now()) {
		return nil, fmt.Errorf("session %s not found", sid)
	}
	return &session, nil
}

// Save inserts or replaces a session row.
func (r *GORMSessionRepository) Save(session *models.Session) error {
	if err := r.db.Save(session).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session by its ID.
func (r *GORMSessionRepository) Delete(sid string) error {
	if err := r.db.Delete(&models.Session{}, "sid = ?", sid).Error; err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sid, err)
	}
	return nil
}

// DeleteExpired purges all sessions past their expiry and returns how many
// rows were removed. The expire column is indexed, so this stays cheap.
func (r *GORMSessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Delete(&models.Session{}, "expire <= ?", now)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

package repositories

import (
	"time"

	"pitchcraft-server/db"
	"pitchcraft-server/entities"
)

type pitchPgRepository struct {
	db db.Database
}

func NewPitchPgRepository(database db.Database) PitchRepository {
	return &pitchPgRepository{db: database}
}

func (r *pitchPgRepository) Create(pitch *entities.Pitch) error {
	return r.db.GetDB().Create(pitch).Error
}

func (r *pitchPgRepository) GetByID(id string) (*entities.Pitch, error) {
	var pitch entities.Pitch
	err := r.db.GetDB().Where("id = ?", id).First(&pitch).Error
	if err != nil {
		return nil, err
	}
	return &pitch, nil
}

func (r *pitchPgRepository) GetByUserID(userID string) ([]entities.Pitch, error) {
	var pitches []entities.Pitch
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&pitches).Error
	return pitches, err
}

func (r *pitchPgRepository) Update(pitch *entities.Pitch) error {
	pitch.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(pitch).Error
}

func (r *pitchPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Pitch{}).Error
}

package repositories

import "pitchcraft-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type PitchRepository interface {
	Create(pitch *entities.Pitch) error
	GetByID(id string) (*entities.Pitch, error)
	GetByUserID(userID string) ([]entities.Pitch, error)
	Update(pitch *entities.Pitch) error
	Delete(id string) error
}

package usecases

import (
	"context"
	"sort"
	"time"

	"pitchcraft-server/entities"
	"pitchcraft-server/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memUserRepo is an in-memory UserRepository standing in for the pg one.
type memUserRepo struct {
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entities.User{}}
}

func (r *memUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now().Format(time.RFC3339)
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(user *entities.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now().Format(time.RFC3339)
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// memPitchRepo is an in-memory PitchRepository.
type memPitchRepo struct {
	pitches map[string]*entities.Pitch
	seq     int
}

func newMemPitchRepo() *memPitchRepo {
	return &memPitchRepo{pitches: map[string]*entities.Pitch{}}
}

func (r *memPitchRepo) Create(pitch *entities.Pitch) error {
	if pitch.ID == "" {
		pitch.ID = uuid.New().String()
	}
	// Monotonic timestamps so newest-first ordering is deterministic
	r.seq++
	pitch.CreatedAt = time.Unix(int64(r.seq), 0).UTC().Format(time.RFC3339)
	pitch.UpdatedAt = pitch.CreatedAt
	stored := *pitch
	r.pitches[pitch.ID] = &stored
	return nil
}

func (r *memPitchRepo) GetByID(id string) (*entities.Pitch, error) {
	pitch, ok := r.pitches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pitch
	return &copied, nil
}

func (r *memPitchRepo) GetByUserID(userID string) ([]entities.Pitch, error) {
	var out []entities.Pitch
	for _, pitch := range r.pitches {
		if pitch.UserID == userID {
			out = append(out, *pitch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *memPitchRepo) Update(pitch *entities.Pitch) error {
	if _, ok := r.pitches[pitch.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	pitch.UpdatedAt = time.Now().Format(time.RFC3339)
	stored := *pitch
	r.pitches[pitch.ID] = &stored
	return nil
}

func (r *memPitchRepo) Delete(id string) error {
	delete(r.pitches, id)
	return nil
}

// fakeGenerator scripts the generation client's behavior per test.
type fakeGenerator struct {
	generateFn func(ctx context.Context, idea string) services.GenerateResult
	improveFn  func(ctx context.Context, current, improvements string) (string, error)
}

func (f *fakeGenerator) GeneratePitch(ctx context.Context, idea string) services.GenerateResult {
	if f.generateFn == nil {
		return services.GenerateResult{Content: services.PitchContent{
			ProjectName:            "FakeProject",
			Tagline:                "fake tagline",
			ProblemStatement:       "fake problem",
			Solution:               "fake solution",
			UniqueValueProposition: "fake uvp",
			TargetAudience:         "fake audience",
			MarketOpportunity:      "fake market",
			PitchContent:           "fake pitch content",
		}}
	}
	return f.generateFn(ctx, idea)
}

func (f *fakeGenerator) ImprovePitch(ctx context.Context, current, improvements string) (string, error) {
	if f.improveFn == nil {
		return "improved: " + current, nil
	}
	return f.improveFn(ctx, current, improvements)
}

package usecases

import (
	"context"
	"errors"
	"strings"

	"pitchcraft-server/apperr"
	"pitchcraft-server/entities"
	"pitchcraft-server/repositories"
	"pitchcraft-server/services"

	"gorm.io/gorm"
)

// PitchUpdate is the allow-list of mutable pitch fields. A nil slot leaves
// the current value untouched; anything outside this struct is ignored.
type PitchUpdate struct {
	ProjectName            *string `json:"project_name"`
	Tagline                *string `json:"tagline"`
	PitchContent           *string `json:"pitch_content"`
	TargetAudience         *string `json:"target_audience"`
	ProblemStatement       *string `json:"problem_statement"`
	Solution               *string `json:"solution"`
	UniqueValueProposition *string `json:"unique_value_proposition"`
	MarketOpportunity      *string `json:"market_opportunity"`
	Status                 *string `json:"status"`
}

// GeneratedPitch pairs the persisted record with whether its content came
// from the fallback payload rather than the model.
type GeneratedPitch struct {
	Pitch    *entities.Pitch
	Fallback bool
}

type PitchUseCase struct {
	PitchRepo repositories.PitchRepository
	Generator services.PitchGenerator
}

func NewPitchUseCase(pitchRepo repositories.PitchRepository, generator services.PitchGenerator) *PitchUseCase {
	return &PitchUseCase{
		PitchRepo: pitchRepo,
		Generator: generator,
	}
}

// Generate creates a pitch from an idea description via the generation client.
func (uc *PitchUseCase) Generate(ctx context.Context, userID, ideaDescription string) (*GeneratedPitch, error) {
	if len(strings.TrimSpace(ideaDescription)) < 20 {
		return nil, apperr.Validation("Please provide a detailed idea description (at least 20 characters)")
	}

	result := uc.Generator.GeneratePitch(ctx, ideaDescription)

	pitch := &entities.Pitch{
		UserID:                 userID,
		IdeaDescription:        ideaDescription,
		ProjectName:            result.Content.ProjectName,
		Tagline:                result.Content.Tagline,
		PitchContent:           result.Content.PitchContent,
		TargetAudience:         result.Content.TargetAudience,
		ProblemStatement:       result.Content.ProblemStatement,
		Solution:               result.Content.Solution,
		UniqueValueProposition: result.Content.UniqueValueProposition,
		MarketOpportunity:      result.Content.MarketOpportunity,
		Status:                 entities.PitchStatusCompleted,
	}

	if err := uc.PitchRepo.Create(pitch); err != nil {
		return nil, err
	}

	return &GeneratedPitch{Pitch: pitch, Fallback: result.Fallback}, nil
}

// List returns all pitches owned by userID, newest first.
func (uc *PitchUseCase) List(userID string) ([]entities.Pitch, error) {
	return uc.PitchRepo.GetByUserID(userID)
}

// Get returns one pitch, restricted to its owner.
func (uc *PitchUseCase) Get(id, userID string) (*entities.Pitch, error) {
	return uc.getOwned(id, userID)
}

// Update applies the allow-listed fields and persists the pitch.
func (uc *PitchUseCase) Update(id, userID string, update PitchUpdate) (*entities.Pitch, error) {
	if update.Status != nil {
		switch *update.Status {
		case entities.PitchStatusDraft, entities.PitchStatusCompleted, entities.PitchStatusExported:
		default:
			return nil, apperr.Validation("Invalid pitch status")
		}
	}

	pitch, err := uc.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if update.ProjectName != nil {
		pitch.ProjectName = *update.ProjectName
	}
	if update.Tagline != nil {
		pitch.Tagline = *update.Tagline
	}
	if update.PitchContent != nil {
		pitch.PitchContent = *update.PitchContent
	}
	if update.TargetAudience != nil {
		pitch.TargetAudience = *update.TargetAudience
	}
	if update.ProblemStatement != nil {
		pitch.ProblemStatement = *update.ProblemStatement
	}
	if update.Solution != nil {
		pitch.Solution = *update.Solution
	}
	if update.UniqueValueProposition != nil {
		pitch.UniqueValueProposition = *update.UniqueValueProposition
	}
	if update.MarketOpportunity != nil {
		pitch.MarketOpportunity = *update.MarketOpportunity
	}
	if update.Status != nil {
		pitch.Status = *update.Status
	}

	if err := uc.PitchRepo.Update(pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

// Improve rewrites the pitch body via the generation client. A failed
// external call surfaces as an error and leaves the record unchanged.
func (uc *PitchUseCase) Improve(ctx context.Context, id, userID, improvements string) (*entities.Pitch, error) {
	if len(strings.TrimSpace(improvements)) < 10 {
		return nil, apperr.Validation("Please provide improvement suggestions (at least 10 characters)")
	}

	pitch, err := uc.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	improved, err := uc.Generator.ImprovePitch(ctx, pitch.PitchContent, improvements)
	if err != nil {
		return nil, err
	}

	pitch.PitchContent = improved
	if err := uc.PitchRepo.Update(pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

// Export marks the pitch exported. Document rendering happens client-side.
func (uc *PitchUseCase) Export(id, userID string) (*entities.Pitch, error) {
	pitch, err := uc.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	pitch.Status = entities.PitchStatusExported
	if err := uc.PitchRepo.Update(pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

// Delete permanently removes the pitch.
func (uc *PitchUseCase) Delete(id, userID string) error {
	if _, err := uc.getOwned(id, userID); err != nil {
		return err
	}
	return uc.PitchRepo.Delete(id)
}

// getOwned fetches a pitch and enforces the ownership guard. Role is never
// consulted here; admins get no override.
func (uc *PitchUseCase) getOwned(id, userID string) (*entities.Pitch, error) {
	pitch, err := uc.PitchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Pitch not found")
		}
		return nil, err
	}

	if pitch.UserID != userID {
		return nil, apperr.Forbidden("Not authorized to access this pitch")
	}

	return pitch, nil
}

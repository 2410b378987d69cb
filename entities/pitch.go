package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PitchStatusDraft     = "draft"
	PitchStatusCompleted = "completed"
	PitchStatusExported  = "exported"
)

// Pitch is one AI-generated pitch document owned by a user.
// UserID is set at creation and never reassigned.
type Pitch struct {
	ID                     string `gorm:"type:text;primaryKey" json:"id"`
	UserID                 string `gorm:"not null;index" json:"user_id"`
	IdeaDescription        string `gorm:"not null" json:"idea_description"`
	ProjectName            string `gorm:"not null" json:"project_name"`
	Tagline                string `gorm:"not null" json:"tagline"`
	PitchContent           string `gorm:"not null" json:"pitch_content"`
	TargetAudience         string `gorm:"not null" json:"target_audience"`
	ProblemStatement       string `gorm:"default:''" json:"problem_statement"`
	Solution               string `gorm:"default:''" json:"solution"`
	UniqueValueProposition string `gorm:"default:''" json:"unique_value_proposition"`
	MarketOpportunity      string `gorm:"default:''" json:"market_opportunity"`
	Status                 string `gorm:"default:draft" json:"status"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

func (p *Pitch) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	if p.Status == "" {
		p.Status = PitchStatusDraft
	}
	return
}

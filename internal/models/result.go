package models

// ScoreDebug is the diagnostic breakdown carried on each scored lead. It is
// stripped from responses unless the caller asks for it explicitly.
type ScoreDebug struct {
	RuleScore     int           `json:"rule_score"`
	AIScore       int           `json:"ai_score"`
	RuleBreakdown RuleBreakdown `json:"rule_breakdown"`
	RuleDetails   RuleDetails   `json:"rule_details"`
	AIIntent      Intent        `json:"ai_intent"`
	AIReasoning   string        `json:"ai_reasoning"`
}

type ScoredLead struct {
	ID          int         `gorm:"primary_key" json:"id"`
	Name        string      `gorm:"type:text" json:"name"`
	Role        string      `gorm:"type:text" json:"role"`
	Company     string      `gorm:"type:text" json:"company"`
	Industry    string      `gorm:"type:text" json:"industry"`
	Location    string      `gorm:"type:text" json:"location"`
	LinkedInBio string      `gorm:"type:text" json:"linkedin_bio"`
	Intent      Intent      `gorm:"type:text" json:"intent"`
	Score       int         `json:"score"`
	Reasoning   string      `gorm:"type:text" json:"reasoning"`
	Error       string      `gorm:"type:text" json:"error,omitempty"`
	Debug       *ScoreDebug `gorm:"serializer:json;type:text" json:"_debug,omitempty"`
}

func (s *ScoredLead) TableName() string {
	return "scored_leads"
}

// WithoutDebug returns a copy safe for external views.
func (s ScoredLead) WithoutDebug() ScoredLead {
	s.Debug = nil
	return s
}

type CreateOfferRequest struct {
	Name          string   `json:"name"`
	ValueProps    []string `json:"value_props"`
	IdealUseCases []string `json:"ideal_use_cases"`
}

// ScoreSummary counts scored leads per final intent label.
type ScoreSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

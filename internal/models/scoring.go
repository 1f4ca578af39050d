package models

type Intent string

const (
	IntentHigh   Intent = "High"
	IntentMedium Intent = "Medium"
	IntentLow    Intent = "Low"
)

// Role match types produced by the rule engine.
const (
	RoleDecisionMaker = "Decision Maker"
	RoleInfluencer    = "Influencer"
	RoleOther         = "Other"
	RoleUnknown       = "Unknown"
)

// Industry match types produced by the rule engine.
const (
	IndustryExactMatch = "Exact ICP match"
	IndustryAdjacent   = "Adjacent industry"
	IndustryDifferent  = "Different industry"
	IndustryNoData     = "No data"
)

type RuleBreakdown struct {
	Role         int `json:"role"`
	Industry     int `json:"industry"`
	Completeness int `json:"completeness"`
}

type RuleDetails struct {
	RoleMatch     string `json:"role_match"`
	IndustryMatch string `json:"industry_match"`
	DataComplete  bool   `json:"data_complete"`
}

// RuleScoreResult is the deterministic half of a lead's score, max 50 points.
type RuleScoreResult struct {
	Total     int           `json:"total"`
	Breakdown RuleBreakdown `json:"breakdown"`
	Details   RuleDetails   `json:"details"`
}

// AIClassification is the classifier's half of a lead's score.
type AIClassification struct {
	Intent    Intent `json:"intent"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

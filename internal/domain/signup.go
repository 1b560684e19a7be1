package domain

import "time"

// Variant selects which signup collection a request targets.
type Variant string

const (
	VariantLearner Variant = "learner"
	VariantMentor  Variant = "mentor"
)

func (v Variant) Valid() bool {
	return v == VariantLearner || v == VariantMentor
}

// HowHeard values accepted on the details page. OtherSource carries the
// free-text answer when HowHeard is "other".
const (
	SourceFriend      = "friend"
	SourceSearch      = "search"
	SourceSocialMedia = "social_media"
	SourceOther       = "other"
)

// Signup is a single learner or mentor lead. Rows are created once on
// final form submission and never updated or deleted afterwards.
type Signup struct {
	ID                  int64
	Email               string
	FirstName           string
	LastName            string
	Phone               string
	Interest            string
	ParticipateResearch bool
	NotifyLaunch        bool
	HowHeard            string
	OtherSource         string
	CreatedAt           time.Time
}

package entity

import (
	"bytes"
	"encoding/json"

	"github.com/futig/counsellor-backend/internal/pkg/coerce"
)

// Profile field keys shared by the store, the resume extractor and the
// prompt that asks the model for them.
var (
	ExtractedProfileFields = []string{
		"name", "email", "current_degree", "current_university", "gpa",
		"work_experience", "research_experience", "skills", "projects",
	}
	TestScoreFields = []string{"ielts", "toefl", "gre", "gmat", "sat", "act"}
)

// TestScores values are kept as submitted when they are a string or a
// number. Anything else is collapsed to its coerced string.
type TestScores struct {
	IELTS any `json:"ielts"`
	TOEFL any `json:"toefl"`
	GRE   any `json:"gre"`
	GMAT  any `json:"gmat"`
	SAT   any `json:"sat"`
	ACT   any `json:"act"`
}

func (ts *TestScores) UnmarshalJSON(data []byte) error {
	type plain TestScores
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*ts = TestScores(decoded)
	for _, f := range ts.fields() {
		*f = ScoreValue(*f)
	}
	return nil
}

func (ts *TestScores) fields() []*any {
	return []*any{&ts.IELTS, &ts.TOEFL, &ts.GRE, &ts.GMAT, &ts.SAT, &ts.ACT}
}

// ScoreValue keeps strings, numbers and null, and coerces lists, objects and
// booleans to a string.
func ScoreValue(x any) any {
	switch v := x.(type) {
	case nil, string, float64:
		return v
	default:
		return coerce.ToString(v)
	}
}

func (ts *TestScores) withDefaults() *TestScores {
	if ts == nil {
		return nil
	}
	out := *ts
	for _, f := range out.fields() {
		if *f == nil {
			*f = ""
		}
	}
	return &out
}

// Profile is the persisted student profile. Every free-text field is a single
// string; lists are joined before they ever reach the store.
type Profile struct {
	ID                      *string         `json:"id,omitempty"`
	Email                   string          `json:"email"`
	Name                    string          `json:"name"`
	CurrentDegree           string          `json:"current_degree"`
	CurrentUniversity       string          `json:"current_university"`
	GPA                     string          `json:"gpa"`
	WorkExperience          string          `json:"work_experience"`
	ResearchExperience      string          `json:"research_experience"`
	TestScores              *TestScores     `json:"test_scores"`
	Skills                  string          `json:"skills"`
	Projects                string          `json:"projects"`
	TargetCountry           string          `json:"target_country"`
	TargetDegree            string          `json:"target_degree"`
	Budget                  string          `json:"budget"`
	ShortlistedUniversities string          `json:"shortlisted_universities"`
	Checklist               json.RawMessage `json:"checklist"`
}

// ProfileInput is a profile submission as it arrives from a client: scalar
// fields may be strings, numbers or lists.
type ProfileInput struct {
	ID                      *string         `json:"id,omitempty"`
	Email                   string          `json:"email"`
	Name                    coerce.Value    `json:"name"`
	CurrentDegree           coerce.Value    `json:"current_degree"`
	CurrentUniversity       coerce.Value    `json:"current_university"`
	GPA                     coerce.Value    `json:"gpa"`
	WorkExperience          coerce.Value    `json:"work_experience"`
	ResearchExperience      coerce.Value    `json:"research_experience"`
	TestScores              *TestScores     `json:"test_scores"`
	Skills                  coerce.Value    `json:"skills"`
	Projects                coerce.Value    `json:"projects"`
	TargetCountry           coerce.Value    `json:"target_country"`
	TargetDegree            coerce.Value    `json:"target_degree"`
	Budget                  coerce.Value    `json:"budget"`
	ShortlistedUniversities coerce.Value    `json:"shortlisted_universities"`
	Checklist               json.RawMessage `json:"checklist"`
}

// Coerce collapses the submission into a storable Profile. It never fails.
func (in *ProfileInput) Coerce() *Profile {
	checklist := bytes.TrimSpace(in.Checklist)
	if len(checklist) == 0 {
		checklist = []byte("{}")
	}

	var id *string
	if in.ID != nil && *in.ID != "" {
		v := *in.ID
		id = &v
	}

	return &Profile{
		ID:                      id,
		Email:                   in.Email,
		Name:                    in.Name.String(),
		CurrentDegree:           in.CurrentDegree.String(),
		CurrentUniversity:       in.CurrentUniversity.String(),
		GPA:                     in.GPA.String(),
		WorkExperience:          in.WorkExperience.String(),
		ResearchExperience:      in.ResearchExperience.String(),
		TestScores:              in.TestScores.withDefaults(),
		Skills:                  in.Skills.String(),
		Projects:                in.Projects.String(),
		TargetCountry:           in.TargetCountry.String(),
		TargetDegree:            in.TargetDegree.String(),
		Budget:                  in.Budget.String(),
		ShortlistedUniversities: in.ShortlistedUniversities.String(),
		Checklist:               json.RawMessage(checklist),
	}
}

type ProfileUpsertResponse struct {
	Message string   `json:"message"`
	Data    *Profile `json:"data"`
}

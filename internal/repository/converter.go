package repository

import (
	"encoding/json"
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/repository/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func toEntityConversation(dbConv *sqlc.Conversation) (*entity.Conversation, error) {
	convUUID := uuid.UUID(dbConv.ID.Bytes)

	messages, err := decodeTurns(dbConv.Messages)
	if err != nil {
		return nil, err
	}

	return &entity.Conversation{
		ID:        convUUID.String(),
		UserEmail: dbConv.UserEmail,
		Title:     dbConv.Title,
		Messages:  messages,
		CreatedAt: dbConv.CreatedAt.Time,
	}, nil
}

func toEntityConversationSummary(row *sqlc.ListConversationsRow) entity.ConversationSummary {
	convUUID := uuid.UUID(row.ID.Bytes)

	return entity.ConversationSummary{
		ID:        convUUID.String(),
		Title:     row.Title,
		CreatedAt: row.CreatedAt.Time,
	}
}

func toEntityProfile(dbProfile *sqlc.Profile) (*entity.Profile, error) {
	profileID := uuid.UUID(dbProfile.ID.Bytes).String()

	testScores, err := decodeTestScores(dbProfile.TestScores)
	if err != nil {
		return nil, err
	}

	return &entity.Profile{
		ID:                      &profileID,
		Email:                   dbProfile.Email,
		Name:                    dbProfile.Name,
		CurrentDegree:           dbProfile.CurrentDegree,
		CurrentUniversity:       dbProfile.CurrentUniversity,
		GPA:                     dbProfile.Gpa,
		WorkExperience:          dbProfile.WorkExperience,
		ResearchExperience:      dbProfile.ResearchExperience,
		TestScores:              testScores,
		Skills:                  dbProfile.Skills,
		Projects:                dbProfile.Projects,
		TargetCountry:           dbProfile.TargetCountry,
		TargetDegree:            dbProfile.TargetDegree,
		Budget:                  dbProfile.Budget,
		ShortlistedUniversities: dbProfile.ShortlistedUniversities,
		Checklist:               checklistOrEmpty(dbProfile.Checklist),
	}, nil
}

func toUpsertProfileParams(profile *entity.Profile) (sqlc.UpsertProfileParams, error) {
	params := sqlc.UpsertProfileParams{
		Email:                   profile.Email,
		Name:                    profile.Name,
		CurrentDegree:           profile.CurrentDegree,
		CurrentUniversity:       profile.CurrentUniversity,
		Gpa:                     profile.GPA,
		WorkExperience:          profile.WorkExperience,
		ResearchExperience:      profile.ResearchExperience,
		Skills:                  profile.Skills,
		Projects:                profile.Projects,
		TargetCountry:           profile.TargetCountry,
		TargetDegree:            profile.TargetDegree,
		Budget:                  profile.Budget,
		ShortlistedUniversities: profile.ShortlistedUniversities,
		Checklist:               checklistOrEmpty(profile.Checklist),
	}

	// id stays unset so the store assigns one
	if profile.ID != nil {
		profileUUID, err := uuid.Parse(*profile.ID)
		if err != nil {
			return params, fmt.Errorf("%w: invalid profile id: %w", entity.ErrInvalidParameter, err)
		}
		params.ID = pgtype.UUID{Bytes: profileUUID, Valid: true}
	}

	testScores, err := encodeTestScores(profile.TestScores)
	if err != nil {
		return params, err
	}
	params.TestScores = testScores

	return params, nil
}

func encodeTurns(turns []entity.Turn) ([]byte, error) {
	if turns == nil {
		turns = []entity.Turn{}
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return nil, fmt.Errorf("encode messages: %w", err)
	}
	return data, nil
}

func decodeTurns(data []byte) ([]entity.Turn, error) {
	turns := []entity.Turn{}
	if len(data) == 0 {
		return turns, nil
	}
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return turns, nil
}

func encodeTestScores(scores *entity.TestScores) ([]byte, error) {
	if scores == nil {
		return nil, nil
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("encode test scores: %w", err)
	}
	return data, nil
}

func decodeTestScores(data []byte) (*entity.TestScores, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var scores entity.TestScores
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode test scores: %w", err)
	}
	return &scores, nil
}

func checklistOrEmpty(data []byte) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("{}")
	}
	return json.RawMessage(data)
}

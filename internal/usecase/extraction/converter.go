package extraction

import (
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/coerce"
)

const testScoresKey = "test_scores"

func profileFromObject(obj map[string]any) map[string]any {
	result := make(map[string]any, len(entity.ExtractedProfileFields)+1)
	for _, field := range entity.ExtractedProfileFields {
		result[field] = coerce.ToString(obj[field])
	}

	rawScores, _ := obj[testScoresKey].(map[string]any)
	scores := make(map[string]any, len(entity.TestScoreFields))
	for _, field := range entity.TestScoreFields {
		if v := entity.ScoreValue(rawScores[field]); v != nil {
			scores[field] = v
		} else {
			scores[field] = ""
		}
	}
	result[testScoresKey] = scores

	return result
}

func guidanceFromObject(obj map[string]any) entity.Guidance {
	guidance := make(entity.Guidance, len(obj))
	for university, value := range obj {
		items, ok := value.([]any)
		if !ok {
			continue
		}

		tasks := make([]entity.GuidanceTask, 0, len(items))
		for _, item := range items {
			switch t := item.(type) {
			case map[string]any:
				tasks = append(tasks, entity.GuidanceTask{
					Task:    coerce.ToString(t["task"]),
					Details: coerce.ToString(t["details"]),
				})
			case string:
				tasks = append(tasks, entity.GuidanceTask{Task: t})
			}
		}
		guidance[university] = tasks
	}
	return guidance
}

func scholarshipsFromValue(value any) []entity.Scholarship {
	items, _ := value.([]any)

	scholarships := make([]entity.Scholarship, 0, min(len(items), entity.MaxScholarships))
	for _, item := range items {
		if len(scholarships) == entity.MaxScholarships {
			break
		}
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		scholarships = append(scholarships, entity.Scholarship{
			Title:       coerce.ToString(record["title"]),
			Amount:      coerce.ToString(record["amount"]),
			Deadline:    coerce.ToString(record["deadline"]),
			Description: coerce.ToString(record["description"]),
			Link:        coerce.ToString(record["link"]),
		})
	}
	return scholarships
}

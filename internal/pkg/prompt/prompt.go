// Package prompt composes the message sequences sent to the generative provider.
// Instruction text is fixed per call type; composition is deterministic.
package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/counsellor-backend/internal/entity"
)

const counsellorInstructions = `You are an expert AI Study Abroad Counsellor. Your goal is to help students find their dream universities and guide them through the application process.

If the student has "Shortlisted Universities", prioritize discussing those and provide specific insights or application tips for them.

Based on the student's profile (GRE, GPA, research, etc.), categorize universities into:
1. Dream (Ambitious)
2. Target (Realistic match)
3. Safe (High chance of admission)

Be encouraging but realistic. Provide specific actionable advice.`

const profileExtractionInstructions = `You are a highly accurate resume parsing assistant.
Analyze the provided CV text and extract the information into the specified JSON format.

FIELDS TO EXTRACT:
- name: Full name of the candidate.
- email: Contact email address.
- current_degree: The most recent or ongoing degree (e.g., B.Tech, BSc, Masters).
- current_university: The institution for the current/most recent degree.
- gpa: Grade point average or percentage.
- work_experience: Summary of professional roles and years.
- research_experience: Summary of research papers, labs, or academic research.
- skills: Technical and soft skills (comma-separated list).
- projects: Key academic or professional projects.
- test_scores: A nested object containing:
    - ielts: Overall band score.
    - toefl: Total score.
    - gre: Total score (Verbal + Quantitative).
    - gmat: Total score.
    - sat: Total score.
    - act: Composite score.

RULES:
1. If a value is not explicitly found, use an empty string "".
2. Do not invent information.
3. Ensure the output is ONLY a valid JSON object.
4. For work and research experience, be concise but include the main responsibilities/topics.`

const guidanceInstructions = `You are an expert study abroad application guide. Provide a specific checklist of tasks for EACH of the given universities in the specified country.
Return JSON where each university name is a key and its value is a list of tasks, each task having "task" and "details" strings.
Include a "%s" key for tasks common to all universities.
If a detail is unknown use an empty string "". Do not invent deadlines or requirements you are not confident about.`

const scholarshipInstructions = `You are a scholarship database assistant. Generate a list of %d real or highly realistic scholarships based on the user's query.
For each scholarship, provide:
- title: Name of the scholarship
- amount: Funding amount (e.g. $10,000, Full Tuition)
- deadline: Typical deadline (e.g. March 2024 or Rolling)
- description: Brief details of eligibility.
- link: A plausible search link or official site.

If a field is unknown use an empty string "". Do not invent values.
Return ONLY valid JSON: a list of scholarship objects.`

// Counsellor builds a conversational turn: persona instructions, the stored
// history in order, then the new message labeled apart from the profile.
func Counsellor(profile string, history []entity.Turn, message string) []entity.ChatMessage {
	messages := make([]entity.ChatMessage, 0, len(history)+2)
	messages = append(messages, entity.ChatMessage{Role: entity.RoleSystem, Content: counsellorInstructions})

	for _, turn := range history {
		messages = append(messages, entity.ChatMessage{Role: turn.Role, Content: turn.Content})
	}

	messages = append(messages, entity.ChatMessage{
		Role:    entity.RoleUser,
		Content: fmt.Sprintf("Student Profile: %s\n\nStudent Query: %s", profile, message),
	})

	return messages
}

// ProfileExtraction asks for the profile fields found in a resume.
func ProfileExtraction(documentText string) []entity.ChatMessage {
	return extraction(profileExtractionInstructions, "CV Text:\n"+documentText)
}

// Guidance asks for a per-university application checklist.
func Guidance(universities []string, country string) []entity.ChatMessage {
	return extraction(
		fmt.Sprintf(guidanceInstructions, entity.GuidanceGeneralKey),
		fmt.Sprintf("Universities: %s\nCountry: %s", strings.Join(universities, ", "), country),
	)
}

// ScholarshipSearch asks for scholarships matching a free-text query.
func ScholarshipSearch(query string) []entity.ChatMessage {
	return extraction(
		fmt.Sprintf(scholarshipInstructions, entity.MaxScholarships),
		"Search Query: "+query,
	)
}

func extraction(instructions, payload string) []entity.ChatMessage {
	return []entity.ChatMessage{
		{Role: entity.RoleSystem, Content: instructions},
		{Role: entity.RoleUser, Content: payload},
	}
}

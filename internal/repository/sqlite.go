package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var (
	_ ConversationRepository = &SQLiteStore{}
	_ ProfileRepository      = &SQLiteStore{}
)

// SQLiteStore implements the repositories on an embedded SQLite database.
// Ids are generated here since SQLite has no uuid default.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dsn := MemoryDSN
	if dbPath != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == MemoryDSN {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		current_degree TEXT NOT NULL DEFAULT '',
		current_university TEXT NOT NULL DEFAULT '',
		gpa TEXT NOT NULL DEFAULT '',
		work_experience TEXT NOT NULL DEFAULT '',
		research_experience TEXT NOT NULL DEFAULT '',
		test_scores TEXT,
		skills TEXT NOT NULL DEFAULT '',
		projects TEXT NOT NULL DEFAULT '',
		target_country TEXT NOT NULL DEFAULT '',
		target_degree TEXT NOT NULL DEFAULT '',
		budget TEXT NOT NULL DEFAULT '',
		shortlisted_universities TEXT NOT NULL DEFAULT '',
		checklist TEXT NOT NULL DEFAULT '{}',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL,
		messages TEXT NOT NULL DEFAULT '[]',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_owner_created ON conversations(user_email, created_at DESC);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateConversation(ctx context.Context, conv entity.Conversation) (*entity.Conversation, error) {
	messages, err := encodeTurns(conv.Messages)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_email, title, messages, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, conv.UserEmail, conv.Title, string(messages), createdAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	turns, err := decodeTurns(messages)
	if err != nil {
		return nil, err
	}

	return &entity.Conversation{
		ID:        id,
		UserEmail: conv.UserEmail,
		Title:     conv.Title,
		Messages:  turns,
		CreatedAt: time.Unix(0, createdAt.UnixNano()).UTC(),
	}, nil
}

func (s *SQLiteStore) GetConversation(ctx context.Context, id, userEmail string) (*entity.Conversation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_email, title, messages, created_at FROM conversations WHERE id = ? AND user_email = ?`,
		id, userEmail,
	)

	var (
		conv      entity.Conversation
		messages  string
		createdAt int64
	)
	err := row.Scan(&conv.ID, &conv.UserEmail, &conv.Title, &messages, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	conv.Messages, err = decodeTurns([]byte(messages))
	if err != nil {
		return nil, err
	}
	conv.CreatedAt = time.Unix(0, createdAt).UTC()

	return &conv, nil
}

func (s *SQLiteStore) ListConversations(ctx context.Context, userEmail string) ([]entity.ConversationSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM conversations WHERE user_email = ? ORDER BY created_at DESC, rowid DESC`,
		userEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	result := []entity.ConversationSummary{}
	for rows.Next() {
		var (
			summary   entity.ConversationSummary
			createdAt int64
		)
		if err := rows.Scan(&summary.ID, &summary.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversation row: %w", err)
		}
		summary.CreatedAt = time.Unix(0, createdAt).UTC()
		result = append(result, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	return result, nil
}

func (s *SQLiteStore) UpdateConversationMessages(ctx context.Context, id, userEmail string, messages []entity.Turn) error {
	data, err := encodeTurns(messages)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE conversations SET messages = ? WHERE id = ? AND user_email = ?`,
		string(data), id, userEmail,
	)
	if err != nil {
		return fmt.Errorf("update conversation messages: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update conversation messages: %w", err)
	}
	if affected == 0 {
		return entity.ErrSessionNotFound
	}

	return nil
}

func (s *SQLiteStore) DeleteConversations(ctx context.Context, userEmail string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM conversations WHERE user_email = ?`, userEmail); err != nil {
		return fmt.Errorf("delete conversations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, current_degree, current_university, gpa, work_experience,
		       research_experience, test_scores, skills, projects, target_country, target_degree,
		       budget, shortlisted_universities, checklist
		FROM profiles WHERE email = ?`, email)

	var (
		p          entity.Profile
		id         string
		testScores sql.NullString
		checklist  string
	)
	err := row.Scan(
		&id, &p.Email, &p.Name, &p.CurrentDegree, &p.CurrentUniversity, &p.GPA, &p.WorkExperience,
		&p.ResearchExperience, &testScores, &p.Skills, &p.Projects, &p.TargetCountry, &p.TargetDegree,
		&p.Budget, &p.ShortlistedUniversities, &checklist,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.ID = &id
	p.Checklist = checklistOrEmpty([]byte(checklist))
	if testScores.Valid {
		p.TestScores, err = decodeTestScores([]byte(testScores.String))
		if err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// UpsertProfile inserts the profile or replaces the one stored under the same
// email. An existing row keeps its id.
func (s *SQLiteStore) UpsertProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	id := uuid.NewString()
	if profile.ID != nil {
		id = *profile.ID
	}

	testScores, err := encodeTestScores(profile.TestScores)
	if err != nil {
		return nil, err
	}
	var testScoresArg any
	if testScores != nil {
		testScoresArg = string(testScores)
	}

	now := time.Now().UTC().UnixNano()
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO profiles (
		id, email, name, current_degree, current_university, gpa, work_experience,
		research_experience, test_scores, skills, projects, target_country, target_degree,
		budget, shortlisted_universities, checklist, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(email) DO UPDATE SET
		name = excluded.name,
		current_degree = excluded.current_degree,
		current_university = excluded.current_university,
		gpa = excluded.gpa,
		work_experience = excluded.work_experience,
		research_experience = excluded.research_experience,
		test_scores = excluded.test_scores,
		skills = excluded.skills,
		projects = excluded.projects,
		target_country = excluded.target_country,
		target_degree = excluded.target_degree,
		budget = excluded.budget,
		shortlisted_universities = excluded.shortlisted_universities,
		checklist = excluded.checklist,
		updated_at = excluded.updated_at`,
		id, profile.Email, profile.Name, profile.CurrentDegree, profile.CurrentUniversity, profile.GPA,
		profile.WorkExperience, profile.ResearchExperience, testScoresArg, profile.Skills, profile.Projects,
		profile.TargetCountry, profile.TargetDegree, profile.Budget, profile.ShortlistedUniversities,
		string(checklistOrEmpty(profile.Checklist)), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return s.GetProfile(ctx, profile.Email)
}

func (s *SQLiteStore) DeleteProfile(ctx context.Context, email string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE email = ?`, email); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

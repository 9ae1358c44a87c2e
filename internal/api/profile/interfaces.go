package profile

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, email string) (*entity.Profile, error)
	UpsertProfile(ctx context.Context, input *entity.ProfileInput) (*entity.Profile, error)
	DeleteAccount(ctx context.Context, email string) error
	ParseResume(ctx context.Context, filename string, data []byte) (map[string]any, error)
}

package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix = "draft:" // draft:{user_id}:{project_public_id}
	draftTTL       = 72 * time.Hour
)

// Repo stores form drafts in Redis, keyed per user and project. The TTL
// means abandoned drafts clean themselves up.
type Repo struct {
	client *redis.Client
}

func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) Save(ctx context.Context, userDBID, projectPublicID string, d Draft) (*Draft, error) {
	if d.DraftID == "" {
		d.DraftID = uuid.New().String()
	}
	d.SavedAt = time.Now().UTC()

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := r.client.Set(ctx, r.key(userDBID, projectPublicID), data, draftTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &d, nil
}

func (r *Repo) Get(ctx context.Context, userDBID, projectPublicID string) (*Draft, error) {
	data, err := r.client.Get(ctx, r.key(userDBID, projectPublicID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &d, nil
}

func (r *Repo) Delete(ctx context.Context, userDBID, projectPublicID string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(userDBID, projectPublicID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete draft: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) key(userDBID, projectPublicID string) string {
	return draftKeyPrefix + userDBID + ":" + projectPublicID
}

package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hedamo/transparency_api/internal/models"
)

// QuestionCache stores AI-generated question sets so repeated form loads for
// the same product do not hit the AI service again.
type QuestionCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewQuestionCache creates a new QuestionCache with the given entry TTL.
func NewQuestionCache(redis *RedisClient, ttl time.Duration) *QuestionCache {
	return &QuestionCache{redis: redis, ttl: ttl}
}

// key builds the Redis key from category and product name. The name is
// normalized and hashed so arbitrary user input stays out of the keyspace.
func (c *QuestionCache) key(category models.Category, productName string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(productName))))
	return fmt.Sprintf("questions:%s:%s", category, hex.EncodeToString(sum[:8]))
}

// Set stores a generated question set.
func (c *QuestionCache) Set(ctx context.Context, category models.Category, productName string, questions []models.Question) error {
	jsonData, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	return c.redis.Set(ctx, c.key(category, productName), string(jsonData), c.ttl)
}

// Get retrieves a cached question set. A cache miss is returned as an error
// from the underlying client; callers treat any error as a miss.
func (c *QuestionCache) Get(ctx context.Context, category models.Category, productName string) ([]models.Question, error) {
	jsonData, err := c.redis.Get(ctx, c.key(category, productName))
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(jsonData), &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	return questions, nil
}

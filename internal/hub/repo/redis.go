package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/community-support-hub/server/internal/core/error"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

type RedisConversationRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisConversationRepository(rdb redis.Cmdable, ttl time.Duration) *RedisConversationRepository {
	return &RedisConversationRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisConversationRepository) messagesKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:messages", conversationID)
}

func (r *RedisConversationRepository) stateKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:state", conversationID)
}

func (r *RedisConversationRepository) AddEntries(ctx context.Context, conversationID string, entries ...model.MessageLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]any, 0, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to marshal transcript entry")
			return fmt.Errorf("marshal entry: %w", err)
		}
		rows = append(rows, b)
	}

	key := r.messagesKey(conversationID)
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, rows...)
		// touching the transcript extends the whole session
		if r.ttl > 0 {
			p.Expire(ctx, key, r.ttl)
			p.Expire(ctx, r.stateKey(conversationID), r.ttl)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push transcript entries to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisConversationRepository) LoadTranscript(ctx context.Context, conversationID string) (*model.Transcript, error) {
	key := r.messagesKey(conversationID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &model.Transcript{ConversationID: conversationID, Entries: []model.MessageLogEntry{}}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load transcript from redis")
		return nil, errx.WrapRedis(err)
	}

	entries := make([]model.MessageLogEntry, 0, len(rows))
	for i, s := range rows {
		var e model.MessageLogEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			logx.Error().Err(err).Str("conversation_id", conversationID).Int("index", i).Msg("failed to unmarshal transcript entry")
			return nil, fmt.Errorf("unmarshal entry at index %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return &model.Transcript{ConversationID: conversationID, Entries: entries}, nil
}

func (r *RedisConversationRepository) SaveState(ctx context.Context, conversationID string, state model.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	key := r.stateKey(conversationID)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save conversation state")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisConversationRepository) LoadState(ctx context.Context, conversationID string) (model.ConversationState, bool, error) {
	key := r.stateKey(conversationID)
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ConversationState{}, false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load conversation state")
		return model.ConversationState{}, false, errx.WrapRedis(err)
	}

	var state model.ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.ConversationState{}, false, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, true, nil
}

func (r *RedisConversationRepository) ClearHistory(ctx context.Context, conversationID string) error {
	if err := r.rdb.Del(ctx, r.messagesKey(conversationID), r.stateKey(conversationID)).Err(); err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to delete conversation from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisConversationRepository) GetMessageCount(ctx context.Context, conversationID string) (int, error) {
	key := r.messagesKey(conversationID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get message count from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.ConversationRepository = (*RedisConversationRepository)(nil)

package leaderboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// WinnersBoard keeps running win totals per player
type WinnersBoard interface {
	RecordWin(ctx context.Context, playerID string, amount int64) error
	TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error)
}

// sortedSetClient is the part of the Redis API the board needs.
// *redis.Client satisfies it.
type sortedSetClient interface {
	ZIncrBy(ctx context.Context, key string, increment float64, member string) *redis.FloatCmd
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) *redis.ZSliceCmd
}

// RedisBoard is a WinnersBoard on a Redis sorted set
type RedisBoard struct {
	client sortedSetClient
	key    string
}

// NewRedisBoard wraps an existing client
func NewRedisBoard(client sortedSetClient) *RedisBoard {
	return &RedisBoard{client: client, key: KeyWinners}
}

// Dial connects to addr and verifies the connection
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgPingRedis, err)
	}
	return client, nil
}

// RecordWin adds amount to the player's running total
func (b *RedisBoard) RecordWin(ctx context.Context, playerID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := b.client.ZIncrBy(ctx, b.key, float64(amount), playerID).Err(); err != nil {
		return fmt.Errorf(ErrMsgRecordWin, err)
	}
	return nil
}

// TopWinners returns the highest totals; ties are ordered by player ID
func (b *RedisBoard) TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	results, err := b.client.ZRevRangeWithScores(ctx, b.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgTopWinners, err)
	}

	entries := make([]domain.WinnerEntry, 0, len(results))
	for _, z := range results {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.WinnerEntry{PlayerID: id, TotalWon: int64(z.Score)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalWon != entries[j].TotalWon {
			return entries[i].TotalWon > entries[j].TotalWon
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

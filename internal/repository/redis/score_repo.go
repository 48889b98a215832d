package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ScoreTTL            = 24 * time.Hour
	ScoreLockTTL        = 300 * time.Millisecond
	PostScoreKeyPrefix  = "vote:score:post" // 帖子净得分（up - down）
	ScoreLockKeyPrefix  = "lock:score:post" // 重建计数时的分布式锁
)

// ScoreCacheRepository 帖子得分缓存。写库成功后增量更新；不确定时删 Key，交给读侧回源重建。
type ScoreCacheRepository struct {
	scoreTTL time.Duration
}

type DistLock struct {
	RDB *redis.Client
}

func NewScoreCacheRepository() *ScoreCacheRepository {
	return &ScoreCacheRepository{scoreTTL: ScoreTTL}
}

func (r *ScoreCacheRepository) scoreKey(postID uint64) string {
	return fmt.Sprintf("%s:%d", PostScoreKeyPrefix, postID)
}

// IncrScore 只在 Key 已存在时增量，避免在过期基数上累加出脏值
func (r *ScoreCacheRepository) IncrScore(ctx context.Context, postID uint64, delta int64) error {
	k := r.scoreKey(postID)
	exists, err := Client.Exists(ctx, k).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}
	if err := Client.IncrBy(ctx, k, delta).Err(); err != nil {
		return err
	}
	return Client.Expire(ctx, k, r.scoreTTL).Err()
}

// GetScoreCached 读缓存，第二个返回值表示是否命中
func (r *ScoreCacheRepository) GetScoreCached(ctx context.Context, postID uint64) (int64, bool, error) {
	val, err := Client.Get(ctx, r.scoreKey(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, true, err
}

// SetScore 回源后回填
func (r *ScoreCacheRepository) SetScore(ctx context.Context, postID uint64, score int64) error {
	return Client.Set(ctx, r.scoreKey(postID), score, r.scoreTTL).Err()
}

// DeleteScore 删除得分缓存，支持可选延迟二删，抵消并发回填窗口
func (r *ScoreCacheRepository) DeleteScore(ctx context.Context, postID uint64, delay ...time.Duration) error {
	key := r.scoreKey(postID)
	if err := Client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(delay) > 0 && delay[0] > 0 {
		d := delay[0]
		go func() {
			t := time.NewTimer(d)
			defer t.Stop()
			<-t.C
			_ = Client.Del(context.Background(), key).Err()
		}()
	}
	return nil
}

// Acquire 请求加分布式锁
func (l *DistLock) Acquire(ctx context.Context, postID uint64, token string) (bool, error) {
	key := fmt.Sprintf("%s:%d", ScoreLockKeyPrefix, postID)
	return l.RDB.SetNX(ctx, key, token, ScoreLockTTL).Result()
}

// Release 用lua保证原子性
func (l *DistLock) Release(ctx context.Context, postID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", ScoreLockKeyPrefix, postID)
	_, err := redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`).Run(ctx, l.RDB, []string{key}, token).Result()
	return err
}

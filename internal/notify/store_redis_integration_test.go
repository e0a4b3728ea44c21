//go:build integration

package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"compliancedesk/pkg/platform/sentinel"
	"compliancedesk/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *Redis
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.ctx = context.Background()
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
	s.store = NewRedis(s.redis.Client, time.Second)
}

func (s *RedisStoreSuite) TestPushListDismiss() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	_, err := s.store.Push(s.ctx, Notification{ID: "two", Kind: KindInfo, Message: "b", CreatedAt: base.Add(time.Millisecond)})
	s.Require().NoError(err)
	_, err = s.store.Push(s.ctx, Notification{ID: "one", Kind: KindSuccess, Message: "a", CreatedAt: base})
	s.Require().NoError(err)

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("one", list[0].ID)
	s.Equal(base.Add(time.Second), list[0].ExpiresAt)

	s.Require().NoError(s.store.Dismiss(s.ctx, "one"))
	s.ErrorIs(s.store.Dismiss(s.ctx, "one"), sentinel.ErrNotFound)

	_, err = s.store.Push(s.ctx, Notification{ID: "two"})
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *RedisStoreSuite) TestKeysExpire() {
	_, err := s.store.Push(s.ctx, Notification{ID: "short", Kind: KindWarning, Message: "x", CreatedAt: time.Now()})
	s.Require().NoError(err)

	s.Eventually(func() bool {
		list, err := s.store.List(s.ctx)
		return err == nil && len(list) == 0
	}, 5*time.Second, 100*time.Millisecond)

	count, err := s.redis.Client.ZCard(s.ctx, indexKey).Result()
	s.Require().NoError(err)
	s.Zero(count, "expired ids are pruned from the index")
}

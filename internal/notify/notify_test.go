package notify

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "compliancedesk/pkg/domain-errors"
	"compliancedesk/pkg/platform/sentinel"
	"compliancedesk/pkg/testutil"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory(50 * time.Millisecond)
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) TearDownTest() {
	s.store.Close()
}

func (s *InMemoryStoreSuite) push(id string, at time.Time) Notification {
	n, err := s.store.Push(s.ctx, Notification{ID: id, Kind: KindSuccess, Message: "saved", CreatedAt: at})
	s.Require().NoError(err)
	return n
}

func (s *InMemoryStoreSuite) TestExpiry() {
	s.Run("banner disappears after the ttl", func() {
		at := time.Now()
		n := s.push("a", at)
		s.Equal(at.Add(50*time.Millisecond), n.ExpiresAt)

		list, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Len(list, 1)

		s.Eventually(func() bool {
			list, _ := s.store.List(s.ctx)
			return len(list) == 0
		}, time.Second, 10*time.Millisecond)
	})
}

func (s *InMemoryStoreSuite) TestDismiss() {
	s.Run("dismiss before expiry removes immediately", func() {
		s.push("b", time.Now())
		s.Require().NoError(s.store.Dismiss(s.ctx, "b"))

		list, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Empty(list)
	})

	s.Run("later expiry after dismiss is a no-op", func() {
		s.push("c", time.Now())
		s.Require().NoError(s.store.Dismiss(s.ctx, "c"))
		time.Sleep(80 * time.Millisecond)
		s.ErrorIs(s.store.Dismiss(s.ctx, "c"), sentinel.ErrNotFound)
	})

	s.Run("duplicate id conflicts", func() {
		s.push("d", time.Now())
		_, err := s.store.Push(s.ctx, Notification{ID: "d"})
		s.ErrorIs(err, sentinel.ErrConflict)
	})
}

func (s *InMemoryStoreSuite) TestListOrder() {
	base := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	s.store = NewInMemory(time.Minute)
	s.push("late", base.Add(time.Second))
	s.push("early", base)

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("early", list[0].ID)
	s.Equal("late", list[1].ID)
}

func TestServiceNotify(t *testing.T) {
	store := NewInMemory(time.Minute)
	defer store.Close()
	svc := NewService(store, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	svc.Notify(ctx, KindWarning, "DOC-001 expires in 9 days")
	svc.Notify(ctx, KindInfo, "   ")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, KindWarning, list[0].Kind)
	assert.Equal(t, "Warning", list[0].Title)
	assert.NotEmpty(t, list[0].ID)

	err = svc.Dismiss(ctx, "missing")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	var nilSvc *Service
	assert.NotPanics(t, func() { nilSvc.Notify(ctx, KindInfo, "ignored") })
}

func TestHandler(t *testing.T) {
	store := NewInMemory(time.Minute)
	defer store.Close()
	svc := NewService(store, slog.New(slog.DiscardHandler))
	svc.Notify(context.Background(), KindSuccess, "Document created")

	r := chi.NewRouter()
	NewHandler(svc, slog.New(slog.DiscardHandler)).Register(r)

	rr := testutil.DoRequest(r, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	testutil.AssertStatusOK(t, rr)
	body := testutil.UnmarshalResponse[struct {
		Notifications []Notification `json:"notifications"`
	}](t, rr)
	require.Len(t, body.Notifications, 1)
	id := body.Notifications[0].ID

	rr = testutil.DoRequest(r, httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id, nil))
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	rr = testutil.DoRequest(r, httptest.NewRequest(http.MethodDelete, "/api/notifications/"+id, nil))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

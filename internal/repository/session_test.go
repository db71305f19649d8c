package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_MarkPastDue_SkipsCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	offering := seedOffering(t, db, 5, nil)
	started := seedSession(t, db, offering, time.Now().Add(-2*time.Hour), domain.SessionStatusActive)
	cancelled := seedSession(t, db, offering, time.Now().Add(-2*time.Hour), domain.SessionStatusCancelled)
	upcoming := seedSession(t, db, offering, time.Now().Add(48*time.Hour), domain.SessionStatusActive)

	count, err := repo.MarkPastDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	for _, tc := range []struct {
		id   string
		want domain.SessionStatus
	}{
		{started.ID, domain.SessionStatusPast},
		{cancelled.ID, domain.SessionStatusCancelled},
		{upcoming.ID, domain.SessionStatusActive},
	} {
		got, err := repo.GetByID(context.Background(), tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Status)
	}
}

func TestSessionRepository_Cancel_IsTerminal(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	offering := seedOffering(t, db, 5, nil)
	session := seedSession(t, db, offering, time.Now().Add(-2*time.Hour), domain.SessionStatusActive)

	require.NoError(t, repo.Cancel(context.Background(), session.ID))

	// A later sweep must not resurrect the session as past.
	count, err := repo.MarkPastDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err := repo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, got.Status)
	assert.Nil(t, got.CalendarEventID)
}

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/cache"
	"github.com/KasumiMercury/primind-calendar-notify/internal/testutil"
)

func TestUserEndpointsCachesDirectoryResult(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testRedis := testutil.SetupTestRedis(t)
	defer testRedis.TeardownTestRedis(t)

	ctrl := gomock.NewController(t)
	next := domain.NewMockEndpointDirectory(ctrl)

	userID, err := domain.UserIDFromString("u3")
	require.NoError(t, err)
	tB, err := domain.NewEndpoint("tB")
	require.NoError(t, err)
	tC, err := domain.NewEndpoint("tC")
	require.NoError(t, err)

	next.EXPECT().UserEndpoints(gomock.Any(), userID).Return([]domain.Endpoint{tB, tC}, nil).Times(1)

	directory := cache.NewCachedEndpointDirectory(next, testRedis.Client, time.Minute)
	ctx := context.Background()

	first, err := directory.UserEndpoints(ctx, userID)
	require.NoError(t, err)

	second, err := directory.UserEndpoints(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []domain.Endpoint{tB, tC}, first)
	assert.Equal(t, first, second)

	ttl, err := testRedis.Client.TTL(ctx, "calendar-notify:endpoints:u3").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestUserEndpointsErrorsAreNotCached(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testRedis := testutil.SetupTestRedis(t)
	defer testRedis.TeardownTestRedis(t)

	ctrl := gomock.NewController(t)
	next := domain.NewMockEndpointDirectory(ctrl)

	userID, err := domain.UserIDFromString("ghost")
	require.NoError(t, err)

	next.EXPECT().UserEndpoints(gomock.Any(), userID).Return(nil, domain.ErrUserNotFound).Times(2)

	directory := cache.NewCachedEndpointDirectory(next, testRedis.Client, time.Minute)

	_, err = directory.UserEndpoints(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = directory.UserEndpoints(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPassThroughMethods(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testRedis := testutil.SetupTestRedis(t)
	defer testRedis.TeardownTestRedis(t)

	ctrl := gomock.NewController(t)
	next := domain.NewMockEndpointDirectory(ctrl)

	calendarID, err := domain.CalendarIDFromString("cal1")
	require.NoError(t, err)

	next.EXPECT().CalendarMembers(gomock.Any(), calendarID).Return(nil, domain.ErrCalendarNotFound).Times(2)
	next.EXPECT().ReportInvalidEndpoints(gomock.Any(), gomock.Any()).Return(nil)

	directory := cache.NewCachedEndpointDirectory(next, testRedis.Client, time.Minute)
	ctx := context.Background()

	_, err = directory.CalendarMembers(ctx, calendarID)
	assert.ErrorIs(t, err, domain.ErrCalendarNotFound)
	_, err = directory.CalendarMembers(ctx, calendarID)
	assert.ErrorIs(t, err, domain.ErrCalendarNotFound)

	assert.NoError(t, directory.ReportInvalidEndpoints(ctx, nil))
}

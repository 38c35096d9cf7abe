package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refreshNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func bundleWithRef(ref string, stats *domain.Stats) domain.Bundle {
	return domain.Bundle{
		Correspondences: []domain.Correspondence{{ID: 1, Subject: "subject " + ref, ReferenceNumber: ref}},
		Meetings:        []domain.Meeting{{ID: 2, Title: "meeting " + ref}},
		Stats:           stats,
	}
}

func TestRefreshControllerStartsIdle(t *testing.T) {
	ctrl := NewRefreshController(mocks.NewMockGateway(t), fixedClock{now: refreshNow}, nil)

	snapshot := ctrl.Snapshot()
	assert.Equal(t, RefreshIdle, snapshot.State)
	assert.NotNil(t, snapshot.Correspondences)
	assert.NotNil(t, snapshot.Meetings)
}

func TestRefreshControllerSuccessReplacesEverything(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).
		Return(bundleWithRef("IN-1", &domain.Stats{MeetingsToday: 1, PendingIssues: 2, CompletedReports: 3}), nil).Once()

	snapshot := ctrl.Refresh(context.Background(), 7)
	assert.Equal(t, RefreshReady, snapshot.State)
	assert.Equal(t, domain.UserID(7), snapshot.Identity)
	require.Len(t, snapshot.Correspondences, 1)
	assert.Equal(t, "IN-1", snapshot.Correspondences[0].ReferenceNumber)
	assert.Equal(t, domain.Stats{MeetingsToday: 1, PendingIssues: 2, CompletedReports: 3}, snapshot.Stats)
	assert.Equal(t, refreshNow, snapshot.UpdatedAt)
	assert.NoError(t, snapshot.Err)
}

func TestRefreshControllerKeepsStatsWhenResponseOmitsThem(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).
		Return(bundleWithRef("IN-1", &domain.Stats{PendingIssues: 4}), nil).Once()
	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).
		Return(bundleWithRef("IN-2", nil), nil).Once()

	ctrl.Refresh(context.Background(), 7)
	snapshot, applied := ctrl.Run(context.Background(), ctrl.Retry())
	require.True(t, applied)
	assert.Equal(t, "IN-2", snapshot.Correspondences[0].ReferenceNumber)
	assert.Equal(t, 4, snapshot.Stats.PendingIssues)
}

func TestRefreshControllerFailureClearsLists(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).Return(bundleWithRef("IN-1", nil), nil).Once()
	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).Return(domain.Bundle{}, domain.NewServerError(500, "DB down")).Once()

	ctrl.Refresh(context.Background(), 7)
	snapshot := ctrl.Refresh(context.Background(), 7)

	assert.Equal(t, RefreshFailed, snapshot.State)
	assert.Equal(t, "DB down", domain.UserMessage(snapshot.Err))
	assert.Empty(t, snapshot.Correspondences)
	assert.Empty(t, snapshot.Meetings)
}

func TestRefreshControllerBeginForNewIdentityDropsOldLists(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).Return(bundleWithRef("IN-1", nil), nil).Once()
	ctrl.Refresh(context.Background(), 7)

	ctrl.Begin(domain.AnonymousUserID)
	snapshot := ctrl.Snapshot()
	assert.True(t, snapshot.Loading())
	assert.Empty(t, snapshot.Correspondences)

	ctrl.Retry()
	assert.Equal(t, domain.AnonymousUserID, ctrl.Snapshot().Identity)
}

func TestRefreshControllerIdentityChangeResetsStats(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).
		Return(bundleWithRef("IN-1", &domain.Stats{MeetingsToday: 2, PendingIssues: 5}), nil).Once()
	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.AnonymousUserID).
		Return(domain.Bundle{}, &domain.ConnectivityError{Message: domain.MessageConnectivity}).Once()

	ctrl.Refresh(context.Background(), 7)

	ctrl.Begin(domain.AnonymousUserID)
	assert.Equal(t, domain.Stats{}, ctrl.Snapshot().Stats)

	snapshot := ctrl.Refresh(context.Background(), domain.AnonymousUserID)
	assert.Equal(t, RefreshFailed, snapshot.State)
	assert.Equal(t, domain.Stats{}, snapshot.Stats)
}

func TestRefreshControllerRetryOnSameIdentityKeepsListsWhileLoading(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).Return(bundleWithRef("IN-1", nil), nil).Once()
	ctrl.Refresh(context.Background(), 7)

	ticket := ctrl.Retry()
	assert.Equal(t, domain.UserID(7), ticket.Identity)
	assert.Len(t, ctrl.Snapshot().Correspondences, 1)
}

func TestRefreshControllerDiscardsLateResultForPreviousIdentity(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	releaseA := make(chan struct{})
	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(1)).
		RunAndReturn(func(context.Context, domain.UserID) (domain.Bundle, error) {
			<-releaseA
			return bundleWithRef("A", nil), nil
		}).Once()
	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(2)).Return(bundleWithRef("B", nil), nil).Once()

	ticketA := ctrl.Begin(1)
	doneA := make(chan bool, 1)
	go func() {
		_, applied := ctrl.Run(context.Background(), ticketA)
		doneA <- applied
	}()

	snapshotB, applied := ctrl.Run(context.Background(), ctrl.Begin(2))
	require.True(t, applied)
	assert.Equal(t, "B", snapshotB.Correspondences[0].ReferenceNumber)

	close(releaseA)
	assert.False(t, <-doneA)

	final := ctrl.Snapshot()
	assert.Equal(t, RefreshReady, final.State)
	assert.Equal(t, domain.UserID(2), final.Identity)
	assert.Equal(t, "B", final.Correspondences[0].ReferenceNumber)
}

func TestRefreshControllerStaleResultBeforeNewerOneLeavesLoading(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	ticketA := ctrl.Begin(1)
	ticketB := ctrl.Begin(2)

	assert.False(t, ctrl.Complete(ticketA, bundleWithRef("A", nil), nil))
	snapshot := ctrl.Snapshot()
	assert.True(t, snapshot.Loading())
	assert.Equal(t, domain.UserID(2), snapshot.Identity)
	assert.Empty(t, snapshot.Correspondences)

	assert.False(t, ctrl.Complete(ticketA, domain.Bundle{}, domain.NewServerError(500, "late failure")))
	assert.True(t, ctrl.Snapshot().Loading(), "a stale failure must not clear the newer fetch")

	assert.True(t, ctrl.Complete(ticketB, bundleWithRef("B", nil), nil))
	assert.Equal(t, "B", ctrl.Snapshot().Correspondences[0].ReferenceNumber)
}

func TestRefreshControllerSnapshotDoesNotAliasState(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	ctrl := NewRefreshController(gateway, fixedClock{now: refreshNow}, nil)

	gateway.EXPECT().FetchBundle(mockAnyContext(), domain.UserID(7)).Return(bundleWithRef("IN-1", nil), nil).Once()
	snapshot := ctrl.Refresh(context.Background(), 7)
	snapshot.Correspondences[0].Subject = "mutated"

	assert.Equal(t, "subject IN-1", ctrl.Snapshot().Correspondences[0].Subject)
}

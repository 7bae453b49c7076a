package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
	"github.com/nexora/corpsite-api/internal/testutil"
)

func newApplication(applicant string) *model.CreateApplicationRequest {
	return &model.CreateApplicationRequest{
		CareerID:  "career-42",
		Applicant: applicant,
		Email:     applicant + "@example.com",
		CoverNote: testutil.StringPtr("I would like this job."),
	}
}

func TestApplicationRepoCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newApplication("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.ApplicationStatusPending, created.Status)
	assert.Nil(t, created.ReviewedBy)

	t.Run("RejectsMissingApplicant", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.CreateApplicationRequest{CareerID: "c", Email: "x@example.com"})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestApplicationRepoUpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newApplication("bob"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, model.ApplicationStatusReviewed, "hr@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusReviewed, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, "hr@example.com", *updated.ReviewedBy)

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, created.ID, model.ApplicationStatus("archived"), "hr@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("MissingRow", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", model.ApplicationStatusReviewed, "hr@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestApplicationRepoListAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	var reviewedID string
	for _, name := range []string{"p1", "p2", "p3"} {
		created, err := repo.Create(ctx, newApplication(name))
		require.NoError(t, err)
		reviewedID = created.ID
	}
	_, err := repo.UpdateStatus(ctx, reviewedID, model.ApplicationStatusReviewed, "hr@example.com")
	require.NoError(t, err)

	all, err := repo.List(ctx, 10, 0, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending := model.ApplicationStatusPending
	onlyPending, err := repo.List(ctx, 10, 0, &pending)
	require.NoError(t, err)
	assert.Len(t, onlyPending, 2)

	assert.Equal(t, model.CountApplications, repo.Category())
	n, err := repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

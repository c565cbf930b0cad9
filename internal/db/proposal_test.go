//go:build integration

package db_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backedfi/fiat-bridge/internal/db"
	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/proposal"
)

func randomProposalDoc() *model.ProposalDocument {
	key := proposal.NewKey(
		gofakeit.UUID(),
		sdkmath.NewInt(int64(gofakeit.Number(1, 1_000_000))),
		gofakeit.UUID(),
	)
	return model.FromProposalKey(key)
}

func TestAddVoteCreatesTallyOnFirstVote(t *testing.T) {
	ctx := context.Background()
	doc := randomProposalDoc()

	updated, err := testDB.AddVote(ctx, doc, "voter-1")
	require.NoError(t, err)
	assert.Equal(t, doc.Digest, updated.Digest)
	assert.Equal(t, doc.Recipient, updated.Recipient)
	assert.Equal(t, []string{"voter-1"}, updated.Voters)

	stored, err := testDB.GetProposal(ctx, doc.Digest)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.VoteCount())
}

func TestAddVoteAppendsDistinctVoters(t *testing.T) {
	ctx := context.Background()
	doc := randomProposalDoc()

	_, err := testDB.AddVote(ctx, doc, "voter-1")
	require.NoError(t, err)
	updated, err := testDB.AddVote(ctx, doc, "voter-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"voter-1", "voter-2"}, updated.Voters)
}

func TestAddVoteRejectsDuplicateVoter(t *testing.T) {
	ctx := context.Background()
	doc := randomProposalDoc()

	_, err := testDB.AddVote(ctx, doc, "voter-1")
	require.NoError(t, err)

	_, err = testDB.AddVote(ctx, doc, "voter-1")
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))

	// the tally is unchanged
	stored, err := testDB.GetProposal(ctx, doc.Digest)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.VoteCount())
}

func TestRemoveVote(t *testing.T) {
	ctx := context.Background()
	doc := randomProposalDoc()

	_, err := testDB.AddVote(ctx, doc, "voter-1")
	require.NoError(t, err)
	_, err = testDB.AddVote(ctx, doc, "voter-2")
	require.NoError(t, err)

	require.NoError(t, testDB.RemoveVote(ctx, doc.Digest, "voter-2"))

	stored, err := testDB.GetProposal(ctx, doc.Digest)
	require.NoError(t, err)
	assert.Equal(t, []string{"voter-1"}, stored.Voters)

	// the removed voter can vote again
	updated, err := testDB.AddVote(ctx, doc, "voter-2")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), updated.VoteCount())
}

func TestRemoveVoteUnknownProposal(t *testing.T) {
	ctx := context.Background()

	err := testDB.RemoveVote(ctx, gofakeit.UUID(), "voter-1")
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
}

func TestGetProposalNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetProposal(ctx, gofakeit.UUID())
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))
}

package tests

import (
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/auction-contract/auction/auctionconst"
	rpcauction "github.com/nspcc-dev/auction-contract/rpc/auction"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	auctionPath  = "../auction"
	bidTokenPath = "../bidtoken"
	assetPath    = "../asset"
)

const (
	minWindow = int64(1000)
	maxWindow = int64(365 * 24 * time.Hour / time.Millisecond)

	commitWindow = int64(100_000)
	revealWindow = int64(100_000)
)

type auctionEnv struct {
	auction *neotest.ContractInvoker
	token   *neotest.ContractInvoker
	asset   *neotest.ContractInvoker

	auctionHash util.Uint160
}

func newAuctionInvoker(t *testing.T) *auctionEnv {
	e := newExecutor(t)

	ctrToken := neotest.CompileFile(t, e.CommitteeHash, bidTokenPath, path.Join(bidTokenPath, "config.yml"))
	ctrAsset := neotest.CompileFile(t, e.CommitteeHash, assetPath, path.Join(assetPath, "config.yml"))
	ctrAuction := neotest.CompileFile(t, e.CommitteeHash, auctionPath, path.Join(auctionPath, "config.yml"))

	e.DeployContract(t, ctrToken, nil)
	e.DeployContract(t, ctrAsset, nil)

	args := make([]interface{}, 4)
	args[0] = ctrToken.Hash
	args[1] = ctrAsset.Hash
	args[2] = minWindow
	args[3] = maxWindow
	e.DeployContract(t, ctrAuction, args)

	return &auctionEnv{
		auction:     e.CommitteeInvoker(ctrAuction.Hash),
		token:       e.CommitteeInvoker(ctrToken.Hash),
		asset:       e.CommitteeInvoker(ctrAsset.Hash),
		auctionHash: ctrAuction.Hash,
	}
}

// mintLot mints a fresh lot to the owner and returns its token ID.
func (env *auctionEnv) mintLot(t *testing.T, owner neotest.Signer) []byte {
	tokenID := randomBytes(16)
	env.asset.Invoke(t, stackitem.Null{}, "mint", owner.ScriptHash(), tokenID)
	return tokenID
}

func (env *auctionEnv) fund(t *testing.T, acc neotest.Signer, amount int64) {
	env.token.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), amount)
}

func (env *auctionEnv) balance(t *testing.T, acc util.Uint160) int64 {
	s, err := env.token.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

func (env *auctionEnv) lotOwner(t *testing.T, tokenID []byte) util.Uint160 {
	s, err := env.asset.TestInvoke(t, "ownerOf", tokenID)
	require.NoError(t, err)
	owner, err := util.Uint160DecodeBytesBE(s.Top().Bytes())
	require.NoError(t, err)
	return owner
}

// deployAuction predicts the instance ID from the current counter, deploys
// the auction on behalf of the owner and checks that the contract derived
// the same ID.
func (env *auctionEnv) deployAuction(t *testing.T, owner neotest.Signer, tokenID []byte, commitDur, revealDur, reserve int64) []byte {
	s, err := env.auction.TestInvoke(t, "counter")
	require.NoError(t, err)
	counter := s.Top().BigInt().Int64()

	s, err = env.auction.TestInvoke(t, "computeAuctionID",
		owner.ScriptHash(), tokenID, commitDur, revealDur, reserve, counter)
	require.NoError(t, err)
	id := s.Top().Bytes()
	require.Len(t, id, auctionconst.AuctionIDSize)

	env.auction.WithSigners(owner).Invoke(t, id, "deployAuction",
		owner.ScriptHash(), tokenID, commitDur, revealDur, reserve)
	return id
}

func (env *auctionEnv) commitment(t *testing.T, bidder neotest.Signer, amount int64, secret []byte) []byte {
	s, err := env.auction.TestInvoke(t, "computeCommitment", bidder.ScriptHash(), amount, secret)
	require.NoError(t, err)
	h := s.Top().Bytes()
	require.Len(t, h, auctionconst.CommitmentSize)
	return h
}

func (env *auctionEnv) phase(t *testing.T, id []byte) int64 {
	s, err := env.auction.TestInvoke(t, "currentPhase", id)
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

func (env *auctionEnv) deadline(t *testing.T, id []byte, method string) uint64 {
	s, err := env.auction.TestInvoke(t, method, id)
	require.NoError(t, err)
	return s.Top().BigInt().Uint64()
}

func (env *auctionEnv) hasCommitment(t *testing.T, id, commitment []byte) bool {
	s, err := env.auction.TestInvoke(t, "hasCommitment", id, commitment)
	require.NoError(t, err)
	return s.Top().Bool()
}

// setTime appends an empty block with the given timestamp, so that the next
// invocation executes at ts+1.
func (env *auctionEnv) setTime(t *testing.T, ts uint64) {
	b := env.auction.NewUnsignedBlock(t)
	b.Timestamp = ts
	require.NoError(t, env.auction.Chain.AddBlock(env.auction.SignBlock(b)))
}

func (env *auctionEnv) reveal(t *testing.T, id []byte, bidder neotest.Signer, amount int64, secret []byte) {
	env.auction.WithSigners(bidder).Invoke(t, stackitem.Null{}, "reveal",
		id, bidder.ScriptHash(), amount, secret)
}

func TestDeployAuction(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	tokenID := env.mintLot(t, owner)

	const reserve = int64(500)
	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, reserve)

	// The lot is in contract custody from deployment on.
	require.Equal(t, env.auctionHash, env.lotOwner(t, tokenID))

	s, err := env.auction.TestInvoke(t, "getAuction", id)
	require.NoError(t, err)
	fields := s.Top().Array()
	require.Equal(t, owner.ScriptHash().BytesBE(), mustBytes(t, fields[0]))
	require.Equal(t, tokenID, mustBytes(t, fields[3]))
	require.EqualValues(t, commitWindow, mustInt(t, fields[4]))
	require.EqualValues(t, revealWindow, mustInt(t, fields[5]))
	require.EqualValues(t, reserve, mustInt(t, fields[6]))
	require.EqualValues(t, auctionconst.PhaseInactive, mustInt(t, fields[7]))
	require.EqualValues(t, 0, mustInt(t, fields[8]))
	require.EqualValues(t, 0, mustInt(t, fields[9]))
	require.EqualValues(t, 0, mustInt(t, fields[11]))

	s, err = env.auction.TestInvoke(t, "counter")
	require.NoError(t, err)
	require.EqualValues(t, 1, s.Top().BigInt().Int64())

	env.auction.Invoke(t, stackitem.Null{}, "highestBidder", id)
	env.auction.Invoke(t, int64(0), "highestBid", id)
}

func TestDeployAuctionValidation(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	stranger := env.auction.NewAccount(t)
	tokenID := env.mintLot(t, owner)

	cOwner := env.auction.WithSigners(owner)

	// Window durations out of the bounds fixed at contract deployment.
	cOwner.InvokeFail(t, auctionconst.ErrCommitDuration, "deployAuction",
		owner.ScriptHash(), tokenID, minWindow-1, revealWindow, int64(0))
	cOwner.InvokeFail(t, auctionconst.ErrRevealDuration, "deployAuction",
		owner.ScriptHash(), tokenID, commitWindow, maxWindow+1, int64(0))

	cOwner.InvokeFail(t, "negative reserve price", "deployAuction",
		owner.ScriptHash(), tokenID, commitWindow, revealWindow, int64(-1))

	// Deployer must witness the transaction.
	env.auction.InvokeFail(t, "owner witness check failed", "deployAuction",
		owner.ScriptHash(), tokenID, commitWindow, revealWindow, int64(0))

	// And must actually hold the lot.
	env.auction.WithSigners(stranger).InvokeFail(t, auctionconst.ErrNotAssetOwner, "deployAuction",
		stranger.ScriptHash(), tokenID, commitWindow, revealWindow, int64(0))

	// Nothing of the above touched the lot.
	require.Equal(t, owner.ScriptHash(), env.lotOwner(t, tokenID))
}

func TestComputeAuctionID(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	tokenID := randomBytes(16)

	idOf := func(counter int64) []byte {
		s, err := env.auction.TestInvoke(t, "computeAuctionID",
			owner.ScriptHash(), tokenID, commitWindow, revealWindow, int64(100), counter)
		require.NoError(t, err)
		return s.Top().Bytes()
	}

	// Derivation is deterministic, the counter is the only differentiator
	// between otherwise identical parameter sets.
	require.Equal(t, idOf(0), idOf(0))
	require.NotEqual(t, idOf(0), idOf(1))

	// The off-chain derivation matches the contract's.
	local, err := rpcauction.AuctionID(owner.ScriptHash(), tokenID,
		big.NewInt(commitWindow), big.NewInt(revealWindow), big.NewInt(100), big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, idOf(0), local)
}

func TestSealBid(t *testing.T) {
	env := newAuctionInvoker(t)
	bidder := env.auction.NewAccount(t)
	secret := randomBytes(8)

	sealed, err := rpcauction.SealBid(bidder.ScriptHash(), big.NewInt(100), secret)
	require.NoError(t, err)
	require.Equal(t, env.commitment(t, bidder, 100, secret), sealed)
}

func TestAuctionLifecycle(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidderA := env.auction.NewAccount(t)
	bidderB := env.auction.NewAccount(t)
	bidderC := env.auction.NewAccount(t)

	env.fund(t, bidderA, 1000)
	env.fund(t, bidderB, 1000)
	env.fund(t, bidderC, 1000)

	tokenID := env.mintLot(t, owner)

	const reserve = int64(150)
	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, reserve)
	require.EqualValues(t, auctionconst.PhaseInactive, env.phase(t, id))

	secretA, secretB, secretC := randomBytes(8), randomBytes(8), randomBytes(8)
	hashA := env.commitment(t, bidderA, 100, secretA)
	hashB := env.commitment(t, bidderB, 200, secretB)
	hashC := env.commitment(t, bidderC, 300, secretC)
	hashB2 := env.commitment(t, bidderB, 250, secretB)

	// Nothing is accepted before the owner opens the commit window.
	env.auction.InvokeFail(t, auctionconst.ErrInvalidPhase, "commit", id, hashA)
	env.auction.WithSigners(bidderA).InvokeFail(t, auctionconst.ErrInvalidPhase, "startAuction", id)

	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)
	require.EqualValues(t, auctionconst.PhaseCommit, env.phase(t, id))

	commitEnd := env.deadline(t, id, "commitPhaseEnd")
	require.Equal(t, env.auction.TopBlock(t).Timestamp+uint64(commitWindow), commitEnd)

	// Commitments are content-addressed, any account may submit them and
	// resubmission is a no-op.
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hashA)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hashB)
	env.auction.WithSigners(bidderC).Invoke(t, stackitem.Null{}, "commit", id, hashC)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hashB2)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hashB)
	require.True(t, env.hasCommitment(t, id, hashA))

	env.auction.InvokeFail(t, auctionconst.ErrInvalidCommitment, "commit", id, randomBytes(16))

	// Reveals are rejected until the commit window has strictly elapsed.
	env.auction.WithSigners(bidderA).InvokeFail(t, auctionconst.ErrInvalidPhase, "reveal",
		id, bidderA.ScriptHash(), int64(100), secretA)

	env.setTime(t, commitEnd)
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id)
	require.EqualValues(t, auctionconst.PhaseReveal, env.phase(t, id))

	revealEnd := env.deadline(t, id, "revealPhaseEnd")
	require.Equal(t, env.auction.TopBlock(t).Timestamp+uint64(revealWindow), revealEnd)

	// A bid below the reserve price is rejected and the commitment survives
	// with the rest of the reverted transaction.
	env.auction.WithSigners(bidderA).InvokeFail(t, auctionconst.ErrReserveNotMet, "reveal",
		id, bidderA.ScriptHash(), int64(100), secretA)
	require.True(t, env.hasCommitment(t, id, hashA))

	// Only the bidder themselves may open their commitment.
	env.auction.InvokeFail(t, "bidder witness check failed", "reveal",
		id, bidderB.ScriptHash(), int64(200), secretB)

	// First qualifying reveal escrows the bid.
	env.reveal(t, id, bidderB, 200, secretB)
	require.False(t, env.hasCommitment(t, id, hashB))
	require.EqualValues(t, 800, env.balance(t, bidderB.ScriptHash()))
	require.EqualValues(t, 200, env.balance(t, env.auctionHash))
	env.auction.Invoke(t, bidderB.ScriptHash().BytesBE(), "highestBidder", id)
	env.auction.Invoke(t, int64(200), "highestBid", id)

	// The commitment is consumed, a reveal cannot be replayed.
	env.auction.WithSigners(bidderB).InvokeFail(t, auctionconst.ErrUnknownCommitment, "reveal",
		id, bidderB.ScriptHash(), int64(200), secretB)

	// Opening with a wrong secret does not match any ledger entry.
	env.auction.WithSigners(bidderC).InvokeFail(t, auctionconst.ErrUnknownCommitment, "reveal",
		id, bidderC.ScriptHash(), int64(300), randomBytes(8))

	// A higher bid refunds the displaced winner and escrows the new one
	// within the same transaction.
	env.reveal(t, id, bidderC, 300, secretC)
	require.EqualValues(t, 1000, env.balance(t, bidderB.ScriptHash()))
	require.EqualValues(t, 700, env.balance(t, bidderC.ScriptHash()))
	require.EqualValues(t, 300, env.balance(t, env.auctionHash))
	env.auction.Invoke(t, bidderC.ScriptHash().BytesBE(), "highestBidder", id)
	env.auction.Invoke(t, int64(300), "highestBid", id)

	// A lower bid is consumed without displacing the incumbent and without
	// moving any funds.
	env.reveal(t, id, bidderB, 250, secretB)
	require.False(t, env.hasCommitment(t, id, hashB2))
	require.EqualValues(t, 1000, env.balance(t, bidderB.ScriptHash()))
	require.EqualValues(t, 300, env.balance(t, env.auctionHash))
	env.auction.Invoke(t, bidderC.ScriptHash().BytesBE(), "highestBidder", id)

	env.auction.WithSigners(bidderB).InvokeFail(t, auctionconst.ErrUnknownCommitment, "reveal",
		id, bidderB.ScriptHash(), int64(250), secretB)

	// Settlement waits for the reveal window to elapse.
	env.auction.InvokeFail(t, auctionconst.ErrRevealWindowOpen, "finalize", id)

	env.setTime(t, revealEnd)
	env.auction.Invoke(t, stackitem.Null{}, "finalize", id)
	require.EqualValues(t, auctionconst.PhaseFinalized, env.phase(t, id))

	// Lot to the winner, escrow to the owner.
	require.Equal(t, bidderC.ScriptHash(), env.lotOwner(t, tokenID))
	require.EqualValues(t, 300, env.balance(t, owner.ScriptHash()))
	require.EqualValues(t, 0, env.balance(t, env.auctionHash))

	// The auction is terminal now.
	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "startAuction", id)
	env.auction.InvokeFail(t, auctionconst.ErrInvalidPhase, "commit", id, hashA)
	env.auction.InvokeFail(t, auctionconst.ErrInvalidPhase, "startRevealPhase", id)
	env.auction.InvokeFail(t, auctionconst.ErrInvalidPhase, "finalize", id)
	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "cancelAuction", id)
}

func TestCommitWindowBoundary(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidder := env.auction.NewAccount(t)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 0)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)
	commitEnd := env.deadline(t, id, "commitPhaseEnd")

	hash1 := env.commitment(t, bidder, 100, randomBytes(8))
	hash2 := env.commitment(t, bidder, 200, randomBytes(8))

	// At commitEnd-1 the window has not elapsed yet.
	env.setTime(t, commitEnd-2)
	env.auction.InvokeFail(t, auctionconst.ErrCommitWindowOpen, "startRevealPhase", id)

	// The deadline timestamp itself still belongs to the commit window.
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hash1)
	require.True(t, env.hasCommitment(t, id, hash1))
	require.Equal(t, commitEnd, env.auction.TopBlock(t).Timestamp)

	// One millisecond later it does not.
	env.auction.InvokeFail(t, auctionconst.ErrCommitWindowClosed, "commit", id, hash2)

	// But the phase may advance from there on.
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id)
	require.EqualValues(t, auctionconst.PhaseReveal, env.phase(t, id))
}

func TestRevealWindowBoundary(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidder := env.auction.NewAccount(t)
	env.fund(t, bidder, 1000)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 0)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)

	secret1, secret2 := randomBytes(8), randomBytes(8)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, env.commitment(t, bidder, 100, secret1))
	hash2 := env.commitment(t, bidder, 200, secret2)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hash2)

	env.setTime(t, env.deadline(t, id, "commitPhaseEnd"))
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id)
	revealEnd := env.deadline(t, id, "revealPhaseEnd")

	// At revealEnd-1 settlement is still premature.
	env.setTime(t, revealEnd-2)
	env.auction.InvokeFail(t, auctionconst.ErrRevealWindowOpen, "finalize", id)

	// A reveal lands exactly on the deadline timestamp and is accepted.
	env.reveal(t, id, bidder, 100, secret1)
	require.Equal(t, revealEnd, env.auction.TopBlock(t).Timestamp)
	env.auction.Invoke(t, int64(100), "highestBid", id)

	// One millisecond later the window is closed for reveals.
	env.auction.WithSigners(bidder).InvokeFail(t, auctionconst.ErrRevealWindowClosed, "reveal",
		id, bidder.ScriptHash(), int64(200), secret2)

	// And open for settlement.
	env.auction.Invoke(t, stackitem.Null{}, "finalize", id)
	require.EqualValues(t, auctionconst.PhaseFinalized, env.phase(t, id))
	require.Equal(t, bidder.ScriptHash(), env.lotOwner(t, tokenID))
}

func TestRevealInsufficientBalance(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidderB := env.auction.NewAccount(t)
	bidderD := env.auction.NewAccount(t)
	env.fund(t, bidderB, 1000)
	env.fund(t, bidderD, 100)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 0)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)

	secretB, secretD := randomBytes(8), randomBytes(8)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, env.commitment(t, bidderB, 200, secretB))
	hashD := env.commitment(t, bidderD, 500, secretD)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, hashD)

	env.setTime(t, env.deadline(t, id, "commitPhaseEnd"))
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id)

	env.reveal(t, id, bidderB, 200, secretB)

	// The bid is higher than the incumbent's, but the bidder cannot cover
	// it: the escrow pull fails and the whole reveal reverts, incumbent
	// refund included.
	env.auction.WithSigners(bidderD).InvokeFail(t, auctionconst.ErrTransferFailed, "reveal",
		id, bidderD.ScriptHash(), int64(500), secretD)

	require.True(t, env.hasCommitment(t, id, hashD))
	require.EqualValues(t, 800, env.balance(t, bidderB.ScriptHash()))
	require.EqualValues(t, 100, env.balance(t, bidderD.ScriptHash()))
	require.EqualValues(t, 200, env.balance(t, env.auctionHash))
	env.auction.Invoke(t, bidderB.ScriptHash().BytesBE(), "highestBidder", id)
	env.auction.Invoke(t, int64(200), "highestBid", id)
}

func TestFinalizeReserveNotMet(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidder := env.auction.NewAccount(t)
	env.fund(t, bidder, 1000)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 500)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)

	secret := randomBytes(8)
	env.auction.Invoke(t, stackitem.Null{}, "commit", id, env.commitment(t, bidder, 200, secret))

	env.setTime(t, env.deadline(t, id, "commitPhaseEnd"))
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id)

	env.auction.WithSigners(bidder).InvokeFail(t, auctionconst.ErrReserveNotMet, "reveal",
		id, bidder.ScriptHash(), int64(200), secret)

	env.setTime(t, env.deadline(t, id, "revealPhaseEnd"))
	env.auction.Invoke(t, stackitem.Null{}, "finalize", id)
	require.EqualValues(t, auctionconst.PhaseReserveNotMet, env.phase(t, id))

	// No transfers happened, the lot is still in custody.
	require.Equal(t, env.auctionHash, env.lotOwner(t, tokenID))
	require.EqualValues(t, 0, env.balance(t, owner.ScriptHash()))
	require.EqualValues(t, 1000, env.balance(t, bidder.ScriptHash()))

	// Only the owner may reclaim the lot.
	env.auction.WithSigners(bidder).InvokeFail(t, "owner witness check failed", "cancelAuction", id)

	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "cancelAuction", id)
	require.EqualValues(t, auctionconst.PhaseCanceled, env.phase(t, id))
	require.Equal(t, owner.ScriptHash(), env.lotOwner(t, tokenID))

	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "cancelAuction", id)
}

func TestCancelAuction(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 0)
	require.Equal(t, env.auctionHash, env.lotOwner(t, tokenID))

	// An auction that was never started can be canceled right away.
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "cancelAuction", id)
	require.EqualValues(t, auctionconst.PhaseCanceled, env.phase(t, id))
	require.Equal(t, owner.ScriptHash(), env.lotOwner(t, tokenID))

	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "startAuction", id)

	// A running auction cannot be canceled.
	tokenID2 := env.mintLot(t, owner)
	id2 := env.deployAuction(t, owner, tokenID2, commitWindow, revealWindow, 0)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id2)
	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "cancelAuction", id2)

	env.setTime(t, env.deadline(t, id2, "commitPhaseEnd"))
	env.auction.Invoke(t, stackitem.Null{}, "startRevealPhase", id2)
	env.auction.WithSigners(owner).InvokeFail(t, auctionconst.ErrInvalidPhase, "cancelAuction", id2)
}

func TestCommitments(t *testing.T) {
	env := newAuctionInvoker(t)
	owner := env.auction.NewAccount(t)
	bidder := env.auction.NewAccount(t)
	tokenID := env.mintLot(t, owner)

	id := env.deployAuction(t, owner, tokenID, commitWindow, revealWindow, 0)
	env.auction.WithSigners(owner).Invoke(t, stackitem.Null{}, "startAuction", id)

	expected := make([][]byte, 0, 3)
	for _, amount := range []int64{100, 200, 300} {
		h := env.commitment(t, bidder, amount, randomBytes(8))
		env.auction.Invoke(t, stackitem.Null{}, "commit", id, h)
		expected = append(expected, h)
	}

	s, err := env.auction.TestInvoke(t, "commitments", id)
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	items := iteratorToArray(iter)
	require.Len(t, items, len(expected))

	got := make([][]byte, 0, len(items))
	for _, item := range items {
		got = append(got, mustBytes(t, item))
	}
	require.ElementsMatch(t, expected, got)

	env.auction.InvokeFail(t, auctionconst.ErrNotFound, "currentPhase", randomBytes(32))
}

func mustBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func mustInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

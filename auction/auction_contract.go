package auction

import (
	"github.com/nspcc-dev/auction-contract/auction/auctionconst"
	"github.com/nspcc-dev/auction-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Auction is a single sealed-bid auction instance hosted by the contract.
	// Owner, PaymentToken, AssetContract, TokenID, CommitDuration,
	// RevealDuration and ReservePrice are fixed at deployment; the rest is
	// the mutable state machine.
	Auction struct {
		Owner          interop.Hash160
		PaymentToken   interop.Hash160
		AssetContract  interop.Hash160
		TokenID        []byte
		CommitDuration int
		RevealDuration int
		ReservePrice   int
		Phase          int
		CommitEnd      int
		RevealEnd      int
		HighestBidder  interop.Hash160
		HighestBid     int
	}

	// auctionSeed is the serialization layout hashed into an instance ID.
	// Counter is the only differentiator between two auctions with otherwise
	// identical parameters deployed by the same owner.
	auctionSeed struct {
		Deployer       interop.Hash160
		TokenID        []byte
		CommitDuration int
		RevealDuration int
		ReservePrice   int
		Counter        int
	}

	// commitmentSeed is the serialization layout hashed into a bid
	// commitment. The order of fields is part of the protocol.
	commitmentSeed struct {
		Bidder interop.Hash160
		Amount int
		Secret []byte
	}
)

// Prefixes used for contract data storage.
const (
	// prefixAuction contains map from instance ID to serialized Auction.
	prefixAuction byte = 0x10
	// prefixCommitment contains the commitment ledger: presence keys built
	// as instance ID + commitment hash.
	prefixCommitment byte = 0x20
	// prefixLock contains per-instance reentrancy flags held for the
	// duration of a reveal or finalize body.
	prefixLock byte = 0x30
)

const (
	paymentTokenKey  = "paymentToken"
	assetContractKey = "assetContract"
	minDurationKey   = "minDuration"
	maxDurationKey   = "maxDuration"
	counterKey       = "instanceCounter"
)

func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		paymentToken  interop.Hash160
		assetContract interop.Hash160
		minDuration   int
		maxDuration   int
	})

	if len(args.paymentToken) != interop.Hash160Len || len(args.assetContract) != interop.Hash160Len {
		panic("init: incorrect length of contract script hash")
	}
	if args.minDuration <= 0 || args.maxDuration < args.minDuration {
		panic("init: invalid duration bounds")
	}

	storage.Put(ctx, paymentTokenKey, args.paymentToken)
	storage.Put(ctx, assetContractKey, args.assetContract)
	storage.Put(ctx, minDurationKey, args.minDuration)
	storage.Put(ctx, maxDurationKey, args.maxDuration)
	storage.Put(ctx, counterKey, 0)

	runtime.Log("auction contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	common.CheckCommitteeWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("auction contract updated")
}

// DeployAuction creates a new auction instance with the given parameters,
// takes the auctioned lot from owner into contract custody and returns the
// instance ID. The ID is derived deterministically from the owner, the
// parameters and the current instance counter, so it can be predicted with
// ComputeAuctionID before deployment. Commit and reveal window durations are
// given in milliseconds and must lie within the bounds fixed at contract
// deployment. Can be invoked only by the lot owner.
//
// Produces AuctionDeployed notification.
func DeployAuction(owner interop.Hash160, tokenID []byte, commitDuration, revealDuration, reservePrice int) []byte {
	ctx := storage.GetContext()

	if len(owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}
	common.CheckOwnerWitness(owner)

	minDuration := storage.Get(ctx, minDurationKey).(int)
	maxDuration := storage.Get(ctx, maxDurationKey).(int)
	if commitDuration < minDuration || commitDuration > maxDuration {
		panic(auctionconst.ErrCommitDuration)
	}
	if revealDuration < minDuration || revealDuration > maxDuration {
		panic(auctionconst.ErrRevealDuration)
	}
	if reservePrice < 0 {
		panic("negative reserve price")
	}

	assetContract := storage.Get(ctx, assetContractKey).(interop.Hash160)
	lotOwner := contract.Call(assetContract, "ownerOf", contract.ReadOnly, tokenID).(interop.Hash160)
	if !common.BytesEqual(lotOwner, owner) {
		panic(auctionconst.ErrNotAssetOwner)
	}

	counter := storage.Get(ctx, counterKey).(int)
	id := computeID(owner, tokenID, commitDuration, revealDuration, reservePrice, counter)
	if storage.Get(ctx, auctionKey(id)) != nil {
		panic(auctionconst.ErrAlreadyExists)
	}

	ok := contract.Call(assetContract, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), tokenID, id).(bool)
	if !ok {
		panic(auctionconst.ErrAssetTransferFailed)
	}

	a := Auction{
		Owner:          owner,
		PaymentToken:   storage.Get(ctx, paymentTokenKey).(interop.Hash160),
		AssetContract:  assetContract,
		TokenID:        tokenID,
		CommitDuration: commitDuration,
		RevealDuration: revealDuration,
		ReservePrice:   reservePrice,
		Phase:          auctionconst.PhaseInactive,
	}
	common.SetSerialized(ctx, auctionKey(id), a)
	storage.Put(ctx, counterKey, counter+1)

	runtime.Log("deployed new auction")
	runtime.Notify("AuctionDeployed", id, owner, tokenID)
	return id
}

// ComputeAuctionID returns the instance ID that DeployAuction derives for the
// given parameters and counter value. The current counter can be obtained
// with Counter.
func ComputeAuctionID(deployer interop.Hash160, tokenID []byte, commitDuration, revealDuration, reservePrice, counter int) []byte {
	return computeID(deployer, tokenID, commitDuration, revealDuration, reservePrice, counter)
}

// ComputeCommitment returns the commitment hash binding bidder, bid amount
// and secret nonce, as recomputed by Reveal.
func ComputeCommitment(bidder interop.Hash160, amount int, secret []byte) []byte {
	return computeCommitment(bidder, amount, secret)
}

// StartAuction opens the commit window of an INACTIVE auction. The commit
// deadline is set to the current transaction time plus the commit duration.
// Can be invoked only by the auction owner.
//
// Produces CommitPhaseStarted notification.
func StartAuction(id []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseInactive {
		panic(auctionconst.ErrInvalidPhase)
	}
	common.CheckOwnerWitness(a.Owner)

	a.CommitEnd = runtime.GetTime() + a.CommitDuration
	a.Phase = auctionconst.PhaseCommit
	common.SetSerialized(ctx, auctionKey(id), a)

	runtime.Notify("CommitPhaseStarted", id, a.CommitEnd)
}

// Commit records a bid commitment hash in the auction's ledger. Resubmitting
// an already present hash is allowed and changes nothing. Commitments are
// accepted through and including the commit deadline timestamp. Can be
// invoked by anyone.
//
// Produces CommitmentAdded notification.
func Commit(id []byte, commitment []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseCommit {
		panic(auctionconst.ErrInvalidPhase)
	}
	if !windowOpen(a.CommitEnd) {
		panic(auctionconst.ErrCommitWindowClosed)
	}
	if len(commitment) != auctionconst.CommitmentSize {
		panic(auctionconst.ErrInvalidCommitment)
	}

	storage.Put(ctx, commitmentKey(id, commitment), []byte{1})
	runtime.Notify("CommitmentAdded", id, commitment)
}

// StartRevealPhase advances the auction from COMMIT to REVEAL once the
// commit deadline has been strictly passed, setting the reveal deadline to
// the current transaction time plus the reveal duration. Can be invoked by
// anyone.
//
// Produces RevealPhaseStarted notification.
func StartRevealPhase(id []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseCommit {
		panic(auctionconst.ErrInvalidPhase)
	}
	if !windowElapsed(a.CommitEnd) {
		panic(auctionconst.ErrCommitWindowOpen)
	}

	a.RevealEnd = runtime.GetTime() + a.RevealDuration
	a.Phase = auctionconst.PhaseReveal
	common.SetSerialized(ctx, auctionKey(id), a)

	runtime.Notify("RevealPhaseStarted", id, a.RevealEnd)
}

// Reveal discloses a bid previously hidden behind a commitment. The
// commitment hash is recomputed from (bidder, amount, secret) and must be
// present in the ledger; it is consumed whether or not the bid displaces the
// current winner, so a reveal cannot be replayed. A bid strictly greater
// than the current highest one refunds the displaced bidder in full and
// pulls the revealed amount from the new bidder into escrow; equal or lower
// bids change nothing beyond commitment consumption. Payment transfers
// failing in any way revert the whole reveal. Must be witnessed by bidder,
// whose funds are being escrowed.
//
// Produces HighestBidChanged notification when the winner changes.
func Reveal(id []byte, bidder interop.Hash160, amount int, secret []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseReveal {
		panic(auctionconst.ErrInvalidPhase)
	}
	if !windowOpen(a.RevealEnd) {
		panic(auctionconst.ErrRevealWindowClosed)
	}
	if len(bidder) != interop.Hash160Len {
		panic("incorrect length of bidder script hash")
	}
	common.CheckBidderWitness(bidder)

	acquireLock(ctx, id)

	hash := computeCommitment(bidder, amount, secret)
	ledgerKey := commitmentKey(id, hash)
	if storage.Get(ctx, ledgerKey) == nil {
		panic(auctionconst.ErrUnknownCommitment)
	}
	if amount <= 0 {
		panic(auctionconst.ErrNonPositiveBid)
	}
	if amount < a.ReservePrice {
		panic(auctionconst.ErrReserveNotMet)
	}

	// A reveal attempt is final: the commitment is spent even if the bid
	// does not displace the incumbent.
	storage.Delete(ctx, ledgerKey)

	prevBidder := a.HighestBidder
	prevBid := a.HighestBid
	hasWinner := len(prevBidder) == interop.Hash160Len

	if hasWinner && amount <= prevBid {
		releaseLock(ctx, id)
		return
	}

	self := runtime.GetExecutingScriptHash()
	if hasWinner {
		refunded := contract.Call(a.PaymentToken, "transfer", contract.All,
			self, prevBidder, prevBid, common.RefundTransferDetails(id)).(bool)
		if !refunded {
			panic(auctionconst.ErrTransferFailed)
		}
	}
	escrowed := contract.Call(a.PaymentToken, "transfer", contract.All,
		bidder, self, amount, common.EscrowTransferDetails(id)).(bool)
	if !escrowed {
		panic(auctionconst.ErrTransferFailed)
	}

	a.HighestBidder = bidder
	a.HighestBid = amount
	common.SetSerialized(ctx, auctionKey(id), a)

	releaseLock(ctx, id)

	if hasWinner {
		runtime.Notify("HighestBidChanged", id, bidder, amount, prevBidder, prevBid)
	} else {
		runtime.Notify("HighestBidChanged", id, bidder, amount, interop.Hash160(nil), 0)
	}
}

// Finalize settles the auction once the reveal deadline has been strictly
// passed. With a winner at or above the reserve price, the lot goes to the
// winner, the escrowed funds go to the auction owner and the auction becomes
// FINALIZED. Without a qualifying bid the auction becomes RESERVE_NOT_MET
// with no transfers, from where the owner may cancel it. Can be invoked by
// anyone.
//
// Produces Finalized notification on the successful branch.
func Finalize(id []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseReveal {
		panic(auctionconst.ErrInvalidPhase)
	}
	if !windowElapsed(a.RevealEnd) {
		panic(auctionconst.ErrRevealWindowOpen)
	}

	acquireLock(ctx, id)

	if len(a.HighestBidder) == interop.Hash160Len && a.HighestBid >= a.ReservePrice {
		transferred := contract.Call(a.AssetContract, "transfer", contract.All,
			a.HighestBidder, a.TokenID, nil).(bool)
		if !transferred {
			panic(auctionconst.ErrAssetTransferFailed)
		}

		paid := contract.Call(a.PaymentToken, "transfer", contract.All,
			runtime.GetExecutingScriptHash(), a.Owner, a.HighestBid,
			common.PayoutTransferDetails(id)).(bool)
		if !paid {
			panic(auctionconst.ErrTransferFailed)
		}

		a.Phase = auctionconst.PhaseFinalized
		common.SetSerialized(ctx, auctionKey(id), a)
		releaseLock(ctx, id)

		caller := runtime.GetScriptContainer().Sender
		runtime.Notify("Finalized", id, caller, a.HighestBidder, a.HighestBid)
		runtime.Log("auction finalized")
		return
	}

	a.Phase = auctionconst.PhaseReserveNotMet
	common.SetSerialized(ctx, auctionKey(id), a)
	releaseLock(ctx, id)
	runtime.Log("auction reserve not met")
}

// CancelAuction cancels an auction that either was never started or resolved
// to RESERVE_NOT_MET, returning the lot to the owner. Can be invoked only by
// the auction owner.
//
// Produces Cancelled notification.
func CancelAuction(id []byte) {
	ctx := storage.GetContext()
	a := getAuction(ctx, id)
	if a.Phase != auctionconst.PhaseInactive && a.Phase != auctionconst.PhaseReserveNotMet {
		panic(auctionconst.ErrInvalidPhase)
	}
	common.CheckOwnerWitness(a.Owner)

	transferred := contract.Call(a.AssetContract, "transfer", contract.All,
		a.Owner, a.TokenID, nil).(bool)
	if !transferred {
		panic(auctionconst.ErrAssetTransferFailed)
	}

	a.Phase = auctionconst.PhaseCanceled
	common.SetSerialized(ctx, auctionKey(id), a)

	caller := runtime.GetScriptContainer().Sender
	runtime.Notify("Cancelled", id, caller)
	runtime.Log("auction cancelled")
}

// OnNEP11Payment is a callback accepting custody of auctioned lots. Only
// transfers from the configured asset contract are accepted.
func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	assetContract := storage.Get(ctx, assetContractKey).(interop.Hash160)
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, assetContract) {
		panic("onNEP11Payment: only the configured asset contract is accepted")
	}
}

// GetAuction returns the full state of an auction instance.
func GetAuction(id []byte) Auction {
	ctx := storage.GetReadOnlyContext()
	return getAuction(ctx, id)
}

// CurrentPhase returns the lifecycle phase of an auction instance.
func CurrentPhase(id []byte) int {
	ctx := storage.GetReadOnlyContext()
	return getAuction(ctx, id).Phase
}

// CommitPhaseEnd returns the commit deadline timestamp in milliseconds, or 0
// if the commit phase has not started yet.
func CommitPhaseEnd(id []byte) int {
	ctx := storage.GetReadOnlyContext()
	return getAuction(ctx, id).CommitEnd
}

// RevealPhaseEnd returns the reveal deadline timestamp in milliseconds, or 0
// if the reveal phase has not started yet.
func RevealPhaseEnd(id []byte) int {
	ctx := storage.GetReadOnlyContext()
	return getAuction(ctx, id).RevealEnd
}

// HighestBidder returns the current winning bidder of an auction instance or
// nil if no qualifying bid has been revealed yet.
func HighestBidder(id []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	a := getAuction(ctx, id)
	if len(a.HighestBidder) != interop.Hash160Len {
		return nil
	}
	return a.HighestBidder
}

// HighestBid returns the current winning bid amount of an auction instance,
// 0 until a qualifying bid has been revealed.
func HighestBid(id []byte) int {
	ctx := storage.GetReadOnlyContext()
	return getAuction(ctx, id).HighestBid
}

// HasCommitment returns true if the given commitment hash is present in the
// auction's ledger and has not been consumed by a reveal.
func HasCommitment(id []byte, commitment []byte) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, commitmentKey(id, commitment)) != nil
}

// Commitments returns an iterator over unconsumed commitment hashes of an
// auction instance.
func Commitments(id []byte) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{prefixCommitment}, id...),
		storage.KeysOnly|storage.RemovePrefix)
}

// Counter returns the current value of the instance counter, i.e. the value
// that the next DeployAuction call will mix into its instance ID.
func Counter() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, counterKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func computeID(deployer interop.Hash160, tokenID []byte, commitDuration, revealDuration, reservePrice, counter int) []byte {
	seed := auctionSeed{
		Deployer:       deployer,
		TokenID:        tokenID,
		CommitDuration: commitDuration,
		RevealDuration: revealDuration,
		ReservePrice:   reservePrice,
		Counter:        counter,
	}
	return crypto.Sha256(std.Serialize(seed))
}

func computeCommitment(bidder interop.Hash160, amount int, secret []byte) []byte {
	seed := commitmentSeed{
		Bidder: bidder,
		Amount: amount,
		Secret: secret,
	}
	return crypto.Sha256(std.Serialize(seed))
}

// windowOpen reports whether a submission window with the given deadline is
// still open. The deadline timestamp itself belongs to the window.
func windowOpen(deadline int) bool {
	return runtime.GetTime() <= deadline
}

// windowElapsed reports whether the given deadline has been strictly passed,
// allowing a transition into the next phase. Note the deliberate asymmetry
// with windowOpen at the boundary timestamp.
func windowElapsed(deadline int) bool {
	return runtime.GetTime() > deadline
}

func acquireLock(ctx storage.Context, id []byte) {
	key := lockKey(id)
	if storage.Get(ctx, key) != nil {
		panic(auctionconst.ErrReentrantCall)
	}
	storage.Put(ctx, key, []byte{1})
}

// releaseLock is called on every ordinary exit; failure paths drop the flag
// together with the rest of the reverted transaction state.
func releaseLock(ctx storage.Context, id []byte) {
	storage.Delete(ctx, lockKey(id))
}

func auctionKey(id []byte) []byte {
	return append([]byte{prefixAuction}, id...)
}

func commitmentKey(id []byte, commitment []byte) []byte {
	return append(append([]byte{prefixCommitment}, id...), commitment...)
}

func lockKey(id []byte) []byte {
	return append([]byte{prefixLock}, id...)
}

func getAuction(ctx storage.Context, id []byte) Auction {
	data := storage.Get(ctx, auctionKey(id))
	if data == nil {
		panic(auctionconst.ErrNotFound)
	}
	return std.Deserialize(data.([]byte)).(Auction)
}

// Package auction contains RPC wrappers for Sealed Bid Auction contract.
package auction

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// AuctionAuction is a contract-specific auction.Auction type used by its methods.
type AuctionAuction struct {
	Owner          util.Uint160
	PaymentToken   util.Uint160
	AssetContract  util.Uint160
	TokenID        []byte
	CommitDuration *big.Int
	RevealDuration *big.Int
	ReservePrice   *big.Int
	Phase          *big.Int
	CommitEnd      *big.Int
	RevealEnd      *big.Int
	HighestBidder  util.Uint160
	HighestBid     *big.Int
}

// AuctionDeployedEvent represents "AuctionDeployed" event emitted by the contract.
type AuctionDeployedEvent struct {
	AuctionID []byte
	Owner     util.Uint160
	TokenID   []byte
}

// CommitPhaseStartedEvent represents "CommitPhaseStarted" event emitted by the contract.
type CommitPhaseStartedEvent struct {
	AuctionID []byte
	CommitEnd *big.Int
}

// CommitmentAddedEvent represents "CommitmentAdded" event emitted by the contract.
type CommitmentAddedEvent struct {
	AuctionID  []byte
	Commitment []byte
}

// RevealPhaseStartedEvent represents "RevealPhaseStarted" event emitted by the contract.
type RevealPhaseStartedEvent struct {
	AuctionID []byte
	RevealEnd *big.Int
}

// HighestBidChangedEvent represents "HighestBidChanged" event emitted by the contract.
type HighestBidChangedEvent struct {
	AuctionID  []byte
	Bidder     util.Uint160
	Amount     *big.Int
	PrevBidder util.Uint160
	PrevAmount *big.Int
}

// FinalizedEvent represents "Finalized" event emitted by the contract.
type FinalizedEvent struct {
	AuctionID []byte
	Caller    util.Uint160
	Winner    util.Uint160
	Amount    *big.Int
}

// CancelledEvent represents "Cancelled" event emitted by the contract.
type CancelledEvent struct {
	AuctionID []byte
	Caller    util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CommitPhaseEnd invokes `commitPhaseEnd` method of contract.
func (c *ContractReader) CommitPhaseEnd(id []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "commitPhaseEnd", id))
}

// Commitments invokes `commitments` method of contract.
func (c *ContractReader) Commitments(id []byte) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "commitments", id))
}

// CommitmentsExpanded is similar to Commitments (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) CommitmentsExpanded(id []byte, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "commitments", _numOfIteratorItems, id))
}

// ComputeAuctionID invokes `computeAuctionID` method of contract.
func (c *ContractReader) ComputeAuctionID(deployer util.Uint160, tokenID []byte, commitDuration *big.Int, revealDuration *big.Int, reservePrice *big.Int, counter *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "computeAuctionID", deployer, tokenID, commitDuration, revealDuration, reservePrice, counter))
}

// ComputeCommitment invokes `computeCommitment` method of contract.
func (c *ContractReader) ComputeCommitment(bidder util.Uint160, amount *big.Int, secret []byte) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "computeCommitment", bidder, amount, secret))
}

// Counter invokes `counter` method of contract.
func (c *ContractReader) Counter() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "counter"))
}

// CurrentPhase invokes `currentPhase` method of contract.
func (c *ContractReader) CurrentPhase(id []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentPhase", id))
}

// GetAuction invokes `getAuction` method of contract.
func (c *ContractReader) GetAuction(id []byte) (*AuctionAuction, error) {
	return itemToAuctionAuction(unwrap.Item(c.invoker.Call(c.hash, "getAuction", id)))
}

// HasCommitment invokes `hasCommitment` method of contract.
func (c *ContractReader) HasCommitment(id []byte, commitment []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasCommitment", id, commitment))
}

// HighestBid invokes `highestBid` method of contract.
func (c *ContractReader) HighestBid(id []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "highestBid", id))
}

// HighestBidder invokes `highestBidder` method of contract.
func (c *ContractReader) HighestBidder(id []byte) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "highestBidder", id))
}

// RevealPhaseEnd invokes `revealPhaseEnd` method of contract.
func (c *ContractReader) RevealPhaseEnd(id []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "revealPhaseEnd", id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelAuction creates a transaction invoking `cancelAuction` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelAuction(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelAuction", id)
}

// CancelAuctionTransaction creates a transaction invoking `cancelAuction` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelAuctionTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelAuction", id)
}

// CancelAuctionUnsigned creates a transaction invoking `cancelAuction` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelAuctionUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelAuction", nil, id)
}

// Commit creates a transaction invoking `commit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Commit(id []byte, commitment []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "commit", id, commitment)
}

// CommitTransaction creates a transaction invoking `commit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CommitTransaction(id []byte, commitment []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "commit", id, commitment)
}

// CommitUnsigned creates a transaction invoking `commit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CommitUnsigned(id []byte, commitment []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "commit", nil, id, commitment)
}

// DeployAuction creates a transaction invoking `deployAuction` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeployAuction(owner util.Uint160, tokenID []byte, commitDuration *big.Int, revealDuration *big.Int, reservePrice *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deployAuction", owner, tokenID, commitDuration, revealDuration, reservePrice)
}

// DeployAuctionTransaction creates a transaction invoking `deployAuction` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeployAuctionTransaction(owner util.Uint160, tokenID []byte, commitDuration *big.Int, revealDuration *big.Int, reservePrice *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deployAuction", owner, tokenID, commitDuration, revealDuration, reservePrice)
}

// DeployAuctionUnsigned creates a transaction invoking `deployAuction` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeployAuctionUnsigned(owner util.Uint160, tokenID []byte, commitDuration *big.Int, revealDuration *big.Int, reservePrice *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deployAuction", nil, owner, tokenID, commitDuration, revealDuration, reservePrice)
}

// Finalize creates a transaction invoking `finalize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Finalize(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finalize", id)
}

// FinalizeTransaction creates a transaction invoking `finalize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinalizeTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finalize", id)
}

// FinalizeUnsigned creates a transaction invoking `finalize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinalizeUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finalize", nil, id)
}

// OnNEP11Payment creates a transaction invoking `onNEP11Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP11Payment(from util.Uint160, amount *big.Int, tokenID []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP11Payment", from, amount, tokenID, data)
}

// OnNEP11PaymentTransaction creates a transaction invoking `onNEP11Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP11PaymentTransaction(from util.Uint160, amount *big.Int, tokenID []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP11Payment", from, amount, tokenID, data)
}

// OnNEP11PaymentUnsigned creates a transaction invoking `onNEP11Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP11PaymentUnsigned(from util.Uint160, amount *big.Int, tokenID []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP11Payment", nil, from, amount, tokenID, data)
}

// Reveal creates a transaction invoking `reveal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reveal(id []byte, bidder util.Uint160, amount *big.Int, secret []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reveal", id, bidder, amount, secret)
}

// RevealTransaction creates a transaction invoking `reveal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevealTransaction(id []byte, bidder util.Uint160, amount *big.Int, secret []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reveal", id, bidder, amount, secret)
}

// RevealUnsigned creates a transaction invoking `reveal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevealUnsigned(id []byte, bidder util.Uint160, amount *big.Int, secret []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reveal", nil, id, bidder, amount, secret)
}

// StartAuction creates a transaction invoking `startAuction` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartAuction(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startAuction", id)
}

// StartAuctionTransaction creates a transaction invoking `startAuction` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartAuctionTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startAuction", id)
}

// StartAuctionUnsigned creates a transaction invoking `startAuction` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartAuctionUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startAuction", nil, id)
}

// StartRevealPhase creates a transaction invoking `startRevealPhase` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartRevealPhase(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startRevealPhase", id)
}

// StartRevealPhaseTransaction creates a transaction invoking `startRevealPhase` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartRevealPhaseTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startRevealPhase", id)
}

// StartRevealPhaseUnsigned creates a transaction invoking `startRevealPhase` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartRevealPhaseUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startRevealPhase", nil, id)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToAuctionAuction converts stack item into *AuctionAuction.
func itemToAuctionAuction(item stackitem.Item, err error) (*AuctionAuction, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AuctionAuction)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AuctionAuction from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AuctionAuction) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 12 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.PaymentToken, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PaymentToken: %w", err)
	}

	index++
	res.AssetContract, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field AssetContract: %w", err)
	}

	index++
	res.TokenID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	index++
	res.CommitDuration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CommitDuration: %w", err)
	}

	index++
	res.RevealDuration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevealDuration: %w", err)
	}

	index++
	res.ReservePrice, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReservePrice: %w", err)
	}

	index++
	res.Phase, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Phase: %w", err)
	}

	index++
	res.CommitEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CommitEnd: %w", err)
	}

	index++
	res.RevealEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevealEnd: %w", err)
	}

	index++
	res.HighestBidder, err = func(item stackitem.Item) (util.Uint160, error) {
		if _, ok := item.(stackitem.Null); ok {
			return util.Uint160{}, nil
		}
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field HighestBidder: %w", err)
	}

	index++
	res.HighestBid, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field HighestBid: %w", err)
	}

	return nil
}

// AuctionDeployedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuctionDeployed" name from the provided [result.ApplicationLog].
func AuctionDeployedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuctionDeployedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuctionDeployedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuctionDeployed" {
				continue
			}
			event := new(AuctionDeployedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuctionDeployedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuctionDeployedEvent or
// returns an error if it's not possible to do to so.
func (e *AuctionDeployedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.TokenID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenID: %w", err)
	}

	return nil
}

// CommitPhaseStartedEventsFromApplicationLog retrieves a set of all emitted events
// with "CommitPhaseStarted" name from the provided [result.ApplicationLog].
func CommitPhaseStartedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CommitPhaseStartedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CommitPhaseStartedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CommitPhaseStarted" {
				continue
			}
			event := new(CommitPhaseStartedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CommitPhaseStartedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CommitPhaseStartedEvent or
// returns an error if it's not possible to do to so.
func (e *CommitPhaseStartedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.CommitEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CommitEnd: %w", err)
	}

	return nil
}

// CommitmentAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "CommitmentAdded" name from the provided [result.ApplicationLog].
func CommitmentAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CommitmentAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CommitmentAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CommitmentAdded" {
				continue
			}
			event := new(CommitmentAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CommitmentAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CommitmentAddedEvent or
// returns an error if it's not possible to do to so.
func (e *CommitmentAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.Commitment, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Commitment: %w", err)
	}

	return nil
}

// RevealPhaseStartedEventsFromApplicationLog retrieves a set of all emitted events
// with "RevealPhaseStarted" name from the provided [result.ApplicationLog].
func RevealPhaseStartedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RevealPhaseStartedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RevealPhaseStartedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RevealPhaseStarted" {
				continue
			}
			event := new(RevealPhaseStartedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RevealPhaseStartedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RevealPhaseStartedEvent or
// returns an error if it's not possible to do to so.
func (e *RevealPhaseStartedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.RevealEnd, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RevealEnd: %w", err)
	}

	return nil
}

// HighestBidChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "HighestBidChanged" name from the provided [result.ApplicationLog].
func HighestBidChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*HighestBidChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*HighestBidChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "HighestBidChanged" {
				continue
			}
			event := new(HighestBidChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize HighestBidChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to HighestBidChangedEvent or
// returns an error if it's not possible to do to so.
func (e *HighestBidChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.Bidder, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Bidder: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.PrevBidder, err = func(item stackitem.Item) (util.Uint160, error) {
		if _, ok := item.(stackitem.Null); ok {
			return util.Uint160{}, nil
		}
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PrevBidder: %w", err)
	}

	index++
	e.PrevAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PrevAmount: %w", err)
	}

	return nil
}

// FinalizedEventsFromApplicationLog retrieves a set of all emitted events
// with "Finalized" name from the provided [result.ApplicationLog].
func FinalizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FinalizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FinalizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Finalized" {
				continue
			}
			event := new(FinalizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FinalizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FinalizedEvent or
// returns an error if it's not possible to do to so.
func (e *FinalizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.Caller, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	index++
	e.Winner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Winner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// CancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "Cancelled" name from the provided [result.ApplicationLog].
func CancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*CancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Cancelled" {
				continue
			}
			event := new(CancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CancelledEvent or
// returns an error if it's not possible to do to so.
func (e *CancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.AuctionID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field AuctionID: %w", err)
	}

	index++
	e.Caller, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

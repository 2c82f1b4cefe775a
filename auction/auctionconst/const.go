// Package auctionconst contains constants of the Auction contract shared
// between the contract itself and off-chain client code.
package auctionconst

// Auction lifecycle phases. FINALIZED and CANCELED are terminal,
// RESERVE_NOT_MET permits a single further transition to CANCELED.
const (
	PhaseInactive      = 0
	PhaseCommit        = 1
	PhaseReveal        = 2
	PhaseFinalized     = 3
	PhaseReserveNotMet = 4
	PhaseCanceled      = 5
)

const (
	// AuctionIDSize is the length of an auction instance identifier
	// (SHA-256 of the serialized deployment seed).
	AuctionIDSize = 32
	// CommitmentSize is the length of a bid commitment hash.
	CommitmentSize = 32
)

// Exception messages thrown by the Auction contract.
const (
	// ErrNotFound is thrown when the referenced auction instance does not exist.
	ErrNotFound = "auction not found"
	// ErrAlreadyExists is thrown on an instance identifier collision at deployment.
	ErrAlreadyExists = "auction already exists"
	// ErrInvalidPhase is thrown when an operation is invoked outside its
	// required phase, including any mutating call on a settled auction.
	ErrInvalidPhase = "invalid auction phase"
	// ErrCommitWindowClosed is thrown on commit after the commit deadline.
	ErrCommitWindowClosed = "commit window closed"
	// ErrCommitWindowOpen is thrown on startRevealPhase before the commit
	// deadline has been strictly passed.
	ErrCommitWindowOpen = "commit window still open"
	// ErrRevealWindowClosed is thrown on reveal after the reveal deadline.
	ErrRevealWindowClosed = "reveal window closed"
	// ErrRevealWindowOpen is thrown on finalize before the reveal deadline
	// has been strictly passed.
	ErrRevealWindowOpen = "reveal window still open"
	// ErrUnknownCommitment is thrown when a revealed bid does not match any
	// recorded commitment.
	ErrUnknownCommitment = "unknown commitment"
	// ErrReserveNotMet is thrown when a revealed amount is below the
	// auction reserve price.
	ErrReserveNotMet = "bid below reserve price"
	// ErrTransferFailed is thrown when the payment token reports a failed
	// transfer; the whole operation is reverted.
	ErrTransferFailed = "failed to transfer funds, aborting"
	// ErrAssetTransferFailed is thrown when the asset registry reports a
	// failed lot transfer; the whole operation is reverted.
	ErrAssetTransferFailed = "failed to transfer the asset, aborting"
	// ErrCommitDuration is thrown at deployment when the commit window
	// duration is outside the configured bounds.
	ErrCommitDuration = "commit duration out of allowed range"
	// ErrRevealDuration is thrown at deployment when the reveal window
	// duration is outside the configured bounds.
	ErrRevealDuration = "reveal duration out of allowed range"
	// ErrReentrantCall is thrown when reveal or finalize is re-entered
	// through an external contract call.
	ErrReentrantCall = "reentrant call"
	// ErrNotAssetOwner is thrown at deployment when the declared owner does
	// not hold the auctioned lot.
	ErrNotAssetOwner = "caller does not own the asset"
	// ErrInvalidCommitment is thrown on a commitment of unexpected length.
	ErrInvalidCommitment = "invalid commitment length"
	// ErrNonPositiveBid is thrown on reveal of a non-positive amount.
	ErrNonPositiveBid = "non-positive bid amount"
)

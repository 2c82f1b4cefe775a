package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by the auction owner but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrBidderWitnessFailed appears when the method must be called
	// by the account whose funds are being moved but was not.
	ErrBidderWitnessFailed = "bidder witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be called
	// by the network committee but was not.
	ErrCommitteeWitnessFailed = "not witnessed by committee"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckBidderWitness checks witness of the passed caller.
// It panics with ErrBidderWitnessFailed message on fail.
func CheckBidderWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrBidderWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// CheckCommitteeWitness panics with ErrCommitteeWitnessFailed if the script
// container is not signed by the network committee.
func CheckCommitteeWitness() {
	committee := neo.GetCommittee()
	if committee == nil {
		panic("failed to get committee")
	}
	l := len(committee)
	committeeMultisig := contract.CreateMultisigAccount(l-(l-1)/2, committee)
	if committeeMultisig == nil || !runtime.CheckWitness(committeeMultisig) {
		panic(ErrCommitteeWitnessFailed)
	}
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}

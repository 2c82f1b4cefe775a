package auction

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// SealBid computes the bid commitment hash for the given bidder, amount and
// secret without any network interaction. The result is identical to the
// contract's computeCommitment, so a bidder can seal a bid locally and never
// disclose its contents to an RPC server before the reveal phase.
func SealBid(bidder util.Uint160, amount *big.Int, secret []byte) ([]byte, error) {
	return hashStruct([]stackitem.Item{
		stackitem.NewByteArray(bidder.BytesBE()),
		stackitem.NewBigInteger(amount),
		stackitem.NewByteArray(secret),
	})
}

// AuctionID computes the auction instance ID that deployAuction derives for
// the given parameters and counter value, without any network interaction.
// The current counter can be fetched with [ContractReader.Counter].
func AuctionID(deployer util.Uint160, tokenID []byte, commitDuration, revealDuration, reservePrice, counter *big.Int) ([]byte, error) {
	return hashStruct([]stackitem.Item{
		stackitem.NewByteArray(deployer.BytesBE()),
		stackitem.NewByteArray(tokenID),
		stackitem.NewBigInteger(commitDuration),
		stackitem.NewBigInteger(revealDuration),
		stackitem.NewBigInteger(reservePrice),
		stackitem.NewBigInteger(counter),
	})
}

// hashStruct reproduces sha256 over System.Binary.Serialize of a struct, the
// derivation used by the contract for commitments and instance IDs.
func hashStruct(fields []stackitem.Item) ([]byte, error) {
	data, err := stackitem.Serialize(stackitem.NewStruct(fields))
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return hash.Sha256(data).BytesBE(), nil
}

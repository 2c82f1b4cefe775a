package asset

import (
	"github.com/nspcc-dev/auction-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// LotState represents a minted auction lot.
type LotState struct {
	Owner   interop.Hash160
	TokenID []byte
	// MintedAt is the block timestamp of the mint transaction.
	MintedAt int
}

// Prefixes used for contract data storage.
const (
	// prefixTotalSupply contains the total number of minted lots.
	prefixTotalSupply byte = 0x00
	// prefixBalance contains map from an owner to their lot count.
	prefixBalance byte = 0x01
	// prefixAccountToken contains map from (owner + token key) to token ID,
	// where token key = hash160(token ID).
	prefixAccountToken byte = 0x02
	// prefixLot contains map from token key to the serialized LotState.
	prefixLot byte = 0x10
)

const maxTokenIDLength = 64

func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{prefixTotalSupply}, 0)
	runtime.Log("asset contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(nef []byte, manifest string, data interface{}) {
	common.CheckCommitteeWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("asset contract updated")
}

// Symbol is a NEP-11 standard method that returns the lot token symbol.
func Symbol() string {
	return "LOT"
}

// Decimals is a NEP-11 standard method that returns token decimals. Lots
// are indivisible, so it is always 0.
func Decimals() int {
	return 0
}

// TotalSupply is a NEP-11 standard method that returns the overall number
// of minted lots.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getTotalSupply(ctx)
}

// BalanceOf is a NEP-11 standard method that returns the number of lots
// owned by the specified account.
func BalanceOf(owner interop.Hash160) int {
	if !isValid(owner) {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	balance := storage.Get(ctx, append([]byte{prefixBalance}, owner...))
	if balance == nil {
		return 0
	}
	return balance.(int)
}

// OwnerOf is a NEP-11 standard method that returns the owner of the
// specified lot.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getLotState(ctx, tokenID).Owner
}

// Properties is a NEP-11 optional method that returns the token ID and mint
// timestamp of the specified lot.
func Properties(tokenID []byte) map[string]interface{} {
	ctx := storage.GetReadOnlyContext()
	ls := getLotState(ctx, tokenID)
	return map[string]interface{}{
		"tokenID":  ls.TokenID,
		"mintedAt": ls.MintedAt,
	}
}

// Tokens is a NEP-11 optional method that returns an iterator over all
// minted lot IDs.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixLot}, storage.ValuesOnly|storage.DeserializeValues|storage.PickField1)
}

// TokensOf is a NEP-11 standard method that returns an iterator over lot
// IDs owned by the specified account.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if !isValid(owner) {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{prefixAccountToken}, owner...), storage.ValuesOnly)
}

// Transfer is a NEP-11 standard method that transfers the lot to a new
// owner. It is allowed for the current owner witnessing the transaction and
// for a contract moving a lot out of its own custody.
//
// Produces Transfer notification and calls onNEP11Payment on contract
// recipients.
func Transfer(to interop.Hash160, tokenID []byte, data interface{}) bool {
	if !isValid(to) {
		panic("invalid receiver")
	}
	var (
		tokenKey = getTokenKey(tokenID)
		ctx      = storage.GetContext()
	)
	ls := getLotStateWithKey(ctx, tokenKey)
	from := ls.Owner
	if !runtime.CheckWitness(from) {
		return false
	}
	if !util.Equals(string(from), string(to)) {
		ls.Owner = to
		putLotStateWithKey(ctx, tokenKey, ls)

		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}
	postTransfer(from, to, tokenID, data)
	return true
}

// Mint creates a new lot with the given ID owned by the specified account.
// Can be invoked only by committee.
//
// Produces Transfer notification with empty sender.
func Mint(to interop.Hash160, tokenID []byte) {
	common.CheckCommitteeWitness()

	if !isValid(to) {
		panic("invalid receiver")
	}
	if len(tokenID) == 0 || len(tokenID) > maxTokenIDLength {
		panic("invalid token ID")
	}

	ctx := storage.GetContext()
	tokenKey := getTokenKey(tokenID)
	if storage.Get(ctx, append([]byte{prefixLot}, tokenKey...)) != nil {
		panic("token already exists")
	}

	ls := LotState{
		Owner:    to,
		TokenID:  tokenID,
		MintedAt: runtime.GetTime(),
	}
	putLotStateWithKey(ctx, tokenKey, ls)
	updateBalance(ctx, tokenID, to, +1)
	updateTotalSupply(ctx, +1)
	postTransfer(nil, to, tokenID, nil)
	runtime.Log("minted new lot")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// updateBalance updates the account's lot count and the account-token index.
func updateBalance(ctx storage.Context, tokenID []byte, acc interop.Hash160, diff int) {
	balanceKey := append([]byte{prefixBalance}, acc...)
	var balance int
	if b := storage.Get(ctx, balanceKey); b != nil {
		balance = b.(int)
	}
	balance += diff
	if balance == 0 {
		storage.Delete(ctx, balanceKey)
	} else {
		storage.Put(ctx, balanceKey, balance)
	}

	tokenKey := getTokenKey(tokenID)
	accountTokenKey := append(append([]byte{prefixAccountToken}, acc...), tokenKey...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

// postTransfer sends Transfer notification to the network and calls
// onNEP11Payment method on contract recipients.
func postTransfer(from, to interop.Hash160, tokenID []byte, data interface{}) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}

func getTotalSupply(ctx storage.Context) int {
	val := storage.Get(ctx, []byte{prefixTotalSupply})
	return val.(int)
}

func updateTotalSupply(ctx storage.Context, diff int) {
	tsKey := []byte{prefixTotalSupply}
	ts := getTotalSupply(ctx)
	storage.Put(ctx, tsKey, ts+diff)
}

// getTokenKey computes hash160 from the given tokenID.
func getTokenKey(tokenID []byte) []byte {
	return crypto.Ripemd160(tokenID)
}

func getLotState(ctx storage.Context, tokenID []byte) LotState {
	return getLotStateWithKey(ctx, getTokenKey(tokenID))
}

func getLotStateWithKey(ctx storage.Context, tokenKey []byte) LotState {
	lotKey := append([]byte{prefixLot}, tokenKey...)
	lsBytes := storage.Get(ctx, lotKey)
	if lsBytes == nil {
		panic("token not found")
	}
	return std.Deserialize(lsBytes.([]byte)).(LotState)
}

func putLotStateWithKey(ctx storage.Context, tokenKey []byte, ls LotState) {
	lotKey := append([]byte{prefixLot}, tokenKey...)
	storage.Put(ctx, lotKey, std.Serialize(ls))
}

// isValid returns true if the provided address is a valid Uint160.
func isValid(address interop.Hash160) bool {
	return address != nil && len(address) == interop.Hash160Len
}

package bidtoken

import (
	"github.com/nspcc-dev/auction-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account structure stores metadata of each bid token account.
	Account struct {
		// Active balance
		Balance int
	}
)

const (
	symbol      = "SBID"
	decimals    = 8
	circulation = "TotalSupply"
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("bid token contract initialized")
}

// Update method updates contract source code and manifest. Can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	common.CheckCommitteeWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("bid token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of bid
// token balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// minted bid tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the bid token balance
// of the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers bid tokens from one
// account to another. Can be invoked by the account owner or by a contract
// transferring funds from its own account, which is what lets an auction
// contract pull a witnessed bidder's funds into escrow and pay refunds back
// out of it.
//
// Produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	var details []byte
	if data != nil {
		details = data.([]byte)
	}
	return token.transfer(ctx, from, to, amount, false, details)
}

// Mint creates the specified amount of bid tokens on the account. Can be
// invoked only by committee.
//
// Produces Mint, Transfer and TransferX notifications.
func Mint(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness()

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	ok := token.transfer(ctx, nil, to, amount, true, nil)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
	runtime.Notify("Mint", to, amount)
}

// Burn destroys the specified amount of bid tokens on the account. Can be
// invoked only by committee.
//
// Produces Burn, Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int) {
	common.CheckCommitteeWitness()

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	ok := token.transfer(ctx, from, nil, amount, true, nil)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
	runtime.Notify("Burn", from, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, holder)

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, system bool, details []byte) bool {
	amountFrom, ok := t.canTransfer(ctx, from, to, amount, system)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		if amountFrom.Balance == amount {
			storage.Delete(ctx, from)
		} else {
			amountFrom.Balance = amountFrom.Balance - amount
			common.SetSerialized(ctx, from, amountFrom)
		}
	}

	if len(to) == interop.Hash160Len {
		amountTo := getAccount(ctx, to)
		amountTo.Balance = amountTo.Balance + amount
		common.SetSerialized(ctx, to, amountTo)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the amount it can transfer. System transfers (mint and
// burn) skip the authorization check.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, system bool) (Account, bool) {
	var emptyAcc = Account{}

	if amount < 0 {
		runtime.Log("negative amount")
		return emptyAcc, false
	}

	if !system {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return emptyAcc, false
		}
	} else if len(from) == 0 {
		return emptyAcc, true
	}

	amountFrom := getAccount(ctx, from)
	if amountFrom.Balance < amount {
		runtime.Log("not enough assets")
		return emptyAcc, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either a signer of the transaction
// or a smart contract moving funds from its own account.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, key interface{}) Account {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func newBidTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)

	c := neotest.CompileFile(t, e.CommitteeHash, bidTokenPath, path.Join(bidTokenPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return e.CommitteeInvoker(c.Hash)
}

func TestBidTokenInfo(t *testing.T) {
	c := newBidTokenInvoker(t)

	c.Invoke(t, "SBID", "symbol")
	c.Invoke(t, int64(8), "decimals")
	c.Invoke(t, int64(0), "totalSupply")
}

func TestBidTokenMint(t *testing.T) {
	c := newBidTokenInvoker(t)
	acc := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(1000))
	c.Invoke(t, int64(1000), "balanceOf", acc.ScriptHash())
	c.Invoke(t, int64(1000), "totalSupply")

	c.InvokeFail(t, "non-positive amount", "mint", acc.ScriptHash(), int64(0))
	c.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "mint", acc.ScriptHash(), int64(1))
}

func TestBidTokenBurn(t *testing.T) {
	c := newBidTokenInvoker(t)
	acc := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(500))
	c.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(200))
	c.Invoke(t, int64(300), "balanceOf", acc.ScriptHash())
	c.Invoke(t, int64(300), "totalSupply")

	// Burn is capped by the account balance.
	c.InvokeFail(t, "can't transfer assets", "burn", acc.ScriptHash(), int64(301))

	c.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "burn", acc.ScriptHash(), int64(1))
}

func TestBidTokenTransfer(t *testing.T) {
	c := newBidTokenInvoker(t)
	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1000))

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), int64(300), nil)
	c.Invoke(t, int64(700), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(300), "balanceOf", to.ScriptHash())

	// Sender must witness the transaction.
	c.WithSigners(to).Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(1), nil)

	// Spending is capped by the balance and negative amounts are rejected.
	cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(701), nil)
	cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(-1), nil)

	c.Invoke(t, int64(700), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(300), "balanceOf", to.ScriptHash())
}

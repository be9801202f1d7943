package account

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/meta"
	"github.com/holiman/uint256"
	"gotest.tools/assert"
)

var addrSeq int

func newAddr() string {
	addrSeq++
	return fmt.Sprintf("acc%061x", addrSeq)
}

func initTestDB(t *testing.T) {
	t.Helper()
	levelDB.InitDB(filepath.Join(t.TempDir(), "db"))
}

func TestCreateAndGet(t *testing.T) {
	initTestDB(t)
	addr := newAddr()
	CreateAccount(addr, "somePublicKey", uint256.NewInt(100))

	assert.Assert(t, ContainsAddress(addr))
	assert.Equal(t, GetBalance(addr).Dec(), "100")
	assert.Assert(t, !IsEscrowAccount(addr))

	escrowAddr := newAddr()
	CreateEscrowAccount(escrowAddr)
	assert.Assert(t, IsEscrowAccount(escrowAddr))
	assert.Equal(t, GetBalance(escrowAddr).Dec(), "0")
}

func TestTransfer(t *testing.T) {
	initTestDB(t)
	from := newAddr()
	to := newAddr()
	CreateAccount(from, "pk1", uint256.NewInt(100))
	CreateAccount(to, "pk2", uint256.NewInt(0))

	assert.NilError(t, Transfer(from, to, uint256.NewInt(30)))
	assert.Equal(t, GetBalance(from).Dec(), "70")
	assert.Equal(t, GetBalance(to).Dec(), "30")

	// 余额不足时整个转账失败，双方余额不动
	err := Transfer(from, to, uint256.NewInt(1000))
	assert.Equal(t, err, meta.ErrTransferFailed)
	assert.Equal(t, GetBalance(from).Dec(), "70")
	assert.Equal(t, GetBalance(to).Dec(), "30")

	// 零金额转账是空操作
	assert.NilError(t, Transfer(from, to, uint256.NewInt(0)))
	assert.NilError(t, Transfer(from, to, nil))
}

func TestTransferCreatesReceiver(t *testing.T) {
	initTestDB(t)
	from := newAddr()
	to := newAddr()
	CreateAccount(from, "pk", uint256.NewInt(50))

	// 首次向未知地址转账会隐式建立账户
	assert.NilError(t, Transfer(from, to, uint256.NewInt(50)))
	assert.Assert(t, ContainsAddress(to))
	assert.Equal(t, GetBalance(to).Dec(), "50")
}

func TestGetBalanceReturnsCopy(t *testing.T) {
	initTestDB(t)
	addr := newAddr()
	CreateAccount(addr, "pk", uint256.NewInt(100))

	b := GetBalance(addr)
	b.SetUint64(0) // 改动拷贝不能影响账户
	assert.Equal(t, GetBalance(addr).Dec(), "100")
}

func TestPersistRoundTrip(t *testing.T) {
	initTestDB(t)
	addr := newAddr()
	CreateAccount(addr, "pk", uint256.NewInt(42))

	// 模拟进程重启后从磁盘恢复
	GetFromDisk()
	assert.Assert(t, ContainsAddress(addr))
	assert.Equal(t, GetBalance(addr).Dec(), "42")
	assert.Equal(t, GetAccount(addr).PublicKey, "pk")
}

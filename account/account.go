package account

import (
	"encoding/json"

	"github.com/cloudflare/cfssl/log"
	commonconst "github.com/crowdfundV1/common"
	"github.com/crowdfundV1/global"
	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/meta"
	"github.com/holiman/uint256"
)

/* 这里封装了所有的对账户的操作
 * 进程默认持有一个全局的State，所以这里直接将State设置为私有，
 * 通过调用函数进行操作
 */

var state State // 私有，通过函数进行操作

type State struct {
	Accounts map[string]meta.Account // Accounts 存储了所有账户（出资人账户和托管账户），key: 账户地址 - val: 账户信息
}

func init() {
	state.Accounts = map[string]meta.Account{}
}

// 创建出资人账户
func CreateAccount(address, publicKey string, balance *uint256.Int) meta.Account {
	if balance == nil {
		balance = uint256.NewInt(0)
	}
	account := meta.Account{
		Address:   address,
		Balance:   new(uint256.Int).Set(balance),
		PublicKey: publicKey,
	}
	state.Accounts[address] = account

	PutIntoDisk(state.Accounts)
	return account
}

// 创建托管账户（余额即当前托管中的全部资金）
func CreateEscrowAccount(address string) meta.Account {
	account := meta.Account{
		Address:  address,
		Balance:  uint256.NewInt(0),
		IsEscrow: true,
	}
	state.Accounts[address] = account

	PutIntoDisk(state.Accounts)
	return account
}

func SubBalance(sender string, amount *uint256.Int) meta.Account {
	senderAccount := state.Accounts[sender]
	if senderAccount.Balance == nil || senderAccount.Balance.Lt(amount) { // 调用SubBalance前会先调用CanTransfer，理论上不会出现余额不足的情况
		log.Infof("[SubBalance]: Insufficient balance.")
		return senderAccount
	}
	senderAccount.Balance = new(uint256.Int).Sub(senderAccount.Balance, amount)
	state.Accounts[sender] = senderAccount

	PutIntoDisk(state.Accounts)
	return senderAccount
}

func AddBalance(receiver string, amount *uint256.Int) meta.Account {
	receiverAccount := state.Accounts[receiver]
	if receiverAccount.Address == "" { // 首次向该地址转账时隐式建立账户
		receiverAccount.Address = receiver
	}
	if receiverAccount.Balance == nil {
		receiverAccount.Balance = uint256.NewInt(0)
	}
	receiverAccount.Balance = new(uint256.Int).Add(receiverAccount.Balance, amount)
	state.Accounts[receiver] = receiverAccount

	PutIntoDisk(state.Accounts)
	return receiverAccount
}

// 判断转出方是否有足够余额
func CanTransfer(sender string, amount *uint256.Int) bool {
	senderAccount := state.Accounts[sender]
	if senderAccount.Balance == nil || senderAccount.Balance.Lt(amount) {
		log.Infof("[CanTransfer]: Insufficient balance.")
		return false
	}
	return true
}

// 转账原语：由 from 向 to 转账，任何非成功都视为调用方操作的硬失败
func Transfer(from, to string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	if !CanTransfer(from, amount) {
		return meta.ErrTransferFailed
	}
	global.ChangedAccounts = append(global.ChangedAccounts, SubBalance(from, amount))
	global.ChangedAccounts = append(global.ChangedAccounts, AddBalance(to, amount))
	return nil
}

// 持久化（每次对账户信息的更改都需要持久化到磁盘）
func PutIntoDisk(accounts map[string]meta.Account) {
	bytes, _ := json.Marshal(accounts)
	levelDB.DBPut(commonconst.AccountsKey, bytes)
}

// 从磁盘获取已有的账户信息（在进程启动时执行）
func GetFromDisk() {
	accountBytes := levelDB.DBGet(commonconst.AccountsKey)
	_ = json.Unmarshal(accountBytes, &state.Accounts)
	if state.Accounts == nil {
		state.Accounts = map[string]meta.Account{}
	}
}

// 账户地址是否存在
func ContainsAddress(address string) bool {
	_, ok := state.Accounts[address]
	return ok
}

// 获取账户信息
func GetAccount(address string) meta.Account {
	return state.Accounts[address]
}

// 获取账户余额（返回拷贝，调用方不能借此改动账户）
func GetBalance(address string) *uint256.Int {
	account := state.Accounts[address]
	if account.Balance == nil {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(account.Balance)
}

// 是否为托管账户地址
func IsEscrowAccount(address string) bool {
	return state.Accounts[address].IsEscrow
}

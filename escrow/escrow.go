package escrow

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/account"
	commonconst "github.com/crowdfundV1/common"
	"github.com/crowdfundV1/event"
	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/meta"
	"github.com/crowdfundV1/oracle"
	"github.com/holiman/uint256"
)

/*
 * 众筹托管状态机：出资记账、目标评估、提款/退款授权、所有权管理。
 *
 * 所有操作都是全有或全无：先做前置检查，再改内部状态，最后转账。
 * 涉及对外转账的操作必须先完成内部状态变更（清零账本、置位提款标记）再发起转账，
 * 转账失败时显式回滚；绝不允许先转账后改状态，对外转账可能触发外部代码重入。
 */

type Escrow struct {
	mu   sync.Mutex // 操作之间串行执行，不允许交错
	c    *meta.Campaign
	feed oracle.Feed
	now  func() time.Time
}

// 部署一个新的众筹活动，部署时间取当前时间，之后不再变化
func New(owner, escrowAddress string, durationSeconds int64, goalUsd, minUsd *uint256.Int, feed oracle.Feed) (*Escrow, error) {
	if meta.IsNullAddress(owner) || meta.IsNullAddress(escrowAddress) {
		return nil, meta.ErrInvalidAddress
	}
	c := &meta.Campaign{
		Owner:              owner,
		EscrowAddress:      escrowAddress,
		DeploymentTime:     time.Now().Unix(),
		Duration:           durationSeconds,
		FundingGoalUsd:     new(uint256.Int).Set(goalUsd),
		MinContributionUsd: new(uint256.Int).Set(minUsd),
		Ledger:             map[string]*uint256.Int{},
	}
	if !account.ContainsAddress(escrowAddress) {
		account.CreateEscrowAccount(escrowAddress)
	}
	e := &Escrow{c: c, feed: feed, now: time.Now}
	e.putIntoDisk()
	log.Infof("众筹活动已部署，截止时刻: %v", time.Unix(c.DeploymentTime+c.Duration, 0))
	return e, nil
}

// 进程重启时从磁盘恢复活动状态
func Restore(feed oracle.Feed) (*Escrow, bool) {
	data := levelDB.DBGet(commonconst.CampaignKey)
	if len(data) == 0 {
		return nil, false
	}
	c := &meta.Campaign{}
	if err := json.Unmarshal(data, c); err != nil {
		log.Errorf("campaign restore error: %s", err)
		return nil, false
	}
	if c.Ledger == nil {
		c.Ledger = map[string]*uint256.Int{}
	}
	return &Escrow{c: c, feed: feed, now: time.Now}, true
}

// 出资：窗口开放期间任何人可调用，资金随调用原子转入托管账户，
// 重复出资累加而不是覆盖
func (e *Escrow) Contribute(caller string, amount *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if meta.IsNullAddress(caller) {
		return meta.ErrInvalidAddress
	}
	usd, err := oracle.ConvertToUsd(e.feed, amount)
	if err != nil {
		return err
	}
	if usd.Lt(e.c.MinContributionUsd) {
		return meta.ErrBelowMinimum
	}
	if e.c.IsClosed(e.now().Unix()) {
		return meta.ErrCampaignClosed
	}
	// 资金随调用转入托管账户，转不进来则整个操作失败，账本不动
	if err := account.Transfer(caller, e.c.EscrowAddress, amount); err != nil {
		return meta.ErrTransferFailed
	}
	entry, ok := e.c.Ledger[caller]
	if !ok {
		entry = uint256.NewInt(0)
	}
	e.c.Ledger[caller] = new(uint256.Int).Add(entry, amount)
	e.putIntoDisk()
	event.Record(meta.EventContributed, caller, map[string]interface{}{
		"amount": amount.Dec(),
		"usd":    usd.Dec(),
	})
	return nil
}

// 提款：仅发起人，窗口关闭且达标后，把托管的全部资金一次性划给发起人。
// FundsWithdrawn 标记是"是否已拨付"的权威判据，不依赖托管余额是否归零
func (e *Escrow) Withdraw(caller string) (*uint256.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.c.Owner {
		return nil, meta.ErrNotOwner
	}
	if e.c.IsOpen(e.now().Unix()) {
		return nil, meta.ErrCampaignStillOpen
	}
	if e.c.FundsWithdrawn {
		return nil, meta.ErrAlreadyWithdrawn
	}
	balance := account.GetBalance(e.c.EscrowAddress)
	usd, err := oracle.ConvertToUsd(e.feed, balance)
	if err != nil {
		return nil, err
	}
	if usd.Lt(e.c.FundingGoalUsd) {
		return nil, meta.ErrGoalNotMet
	}
	// 先置位再转账，重入的二次提款会被上面的标记挡住
	e.c.FundsWithdrawn = true
	if err := account.Transfer(e.c.EscrowAddress, e.c.Owner, balance); err != nil {
		e.c.FundsWithdrawn = false
		return nil, meta.ErrTransferFailed
	}
	e.putIntoDisk()
	event.Record(meta.EventWithdrawn, caller, map[string]interface{}{
		"amount": balance.Dec(),
	})
	return balance, nil
}

// 退款：窗口关闭且未达标时，出资人取回自己账本上的全部出资。
// 拨付完成后目标结果已锁定，一律按目标达成处理
func (e *Escrow) ClaimRefund(caller string) (*uint256.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.c.IsOpen(e.now().Unix()) {
		return nil, meta.ErrCampaignStillOpen
	}
	if e.c.FundsWithdrawn {
		return nil, meta.ErrGoalWasMet
	}
	balance := account.GetBalance(e.c.EscrowAddress)
	usd, err := oracle.ConvertToUsd(e.feed, balance)
	if err != nil {
		return nil, err
	}
	if !usd.Lt(e.c.FundingGoalUsd) {
		return nil, meta.ErrGoalWasMet
	}
	entry, ok := e.c.Ledger[caller]
	if !ok || entry.IsZero() {
		return nil, meta.ErrNothingContributed
	}
	refund := new(uint256.Int).Set(entry)
	// 先清零再转账，转账会把控制权交给外部
	e.c.Ledger[caller] = uint256.NewInt(0)
	if err := account.Transfer(e.c.EscrowAddress, caller, refund); err != nil {
		// 参考实现在这里不恢复账本，出资人的额度会永久丢失；
		// 本实现选择恢复，偏差记录在 DESIGN.md
		e.c.Ledger[caller] = refund
		return nil, meta.ErrTransferFailed
	}
	e.putIntoDisk()
	event.Record(meta.EventRefunded, caller, map[string]interface{}{
		"amount": refund.Dec(),
	})
	return refund, nil
}

// 转移所有权，不允许转给空地址
func (e *Escrow) TransferOwnership(caller, newOwner string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.c.Owner {
		return meta.ErrNotOwner
	}
	if meta.IsNullAddress(newOwner) {
		return meta.ErrInvalidAddress
	}
	e.c.Owner = newOwner
	e.putIntoDisk()
	event.Record(meta.EventOwnershipTransferred, caller, map[string]interface{}{
		"new_owner": newOwner,
	})
	return nil
}

// 配置被授权的账本更新方（例如配套的token合约）
func (e *Escrow) SetAuthorizedUpdater(caller, updater string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.c.Owner {
		return meta.ErrNotOwner
	}
	if meta.IsNullAddress(updater) {
		return meta.ErrInvalidAddress
	}
	e.c.AuthorizedUpdater = updater
	e.putIntoDisk()
	event.Record(meta.EventUpdaterSet, caller, map[string]interface{}{
		"updater": updater,
	})
	return nil
}

// 管理性改写：授权更新方强制覆盖（不是累加）某个出资人的账本数值，
// 绕过正常的出资累加规则，供外部系统重新对账使用；托管余额不受影响
func (e *Escrow) UpdateContributorBalance(caller, contributor string, newBalance *uint256.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if meta.IsNullAddress(caller) || caller != e.c.AuthorizedUpdater {
		return meta.ErrUnauthorized
	}
	if meta.IsNullAddress(contributor) {
		return meta.ErrInvalidAddress
	}
	if newBalance == nil {
		newBalance = uint256.NewInt(0)
	}
	e.c.Ledger[contributor] = new(uint256.Int).Set(newBalance)
	e.putIntoDisk()
	event.Record(meta.EventBalanceOverridden, caller, map[string]interface{}{
		"contributor": contributor,
		"new_balance": newBalance.Dec(),
	})
	return nil
}

// 查询金额的美元价值（只读，直接用最新报价换算）
func (e *Escrow) GetUsdValue(amount *uint256.Int) (*uint256.Int, error) {
	return oracle.ConvertToUsd(e.feed, amount)
}

// 活动状态快照（拷贝，调用方不能借此改动状态）
func (e *Escrow) Campaign() meta.Campaign {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := *e.c
	c.FundingGoalUsd = new(uint256.Int).Set(e.c.FundingGoalUsd)
	c.MinContributionUsd = new(uint256.Int).Set(e.c.MinContributionUsd)
	c.Ledger = map[string]*uint256.Int{}
	for addr, entry := range e.c.Ledger {
		c.Ledger[addr] = new(uint256.Int).Set(entry)
	}
	return c
}

// 某个出资人的账本数值
func (e *Escrow) LedgerEntry(address string) *uint256.Int {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.c.Ledger[address]
	if !ok {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(entry)
}

// 托管账户当前余额
func (e *Escrow) CustodyBalance() *uint256.Int {
	return account.GetBalance(e.c.EscrowAddress)
}

func (e *Escrow) putIntoDisk() {
	bytes, _ := json.Marshal(e.c)
	levelDB.DBPut(commonconst.CampaignKey, bytes)
}

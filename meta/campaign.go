package meta

import "github.com/holiman/uint256"

// 众筹活动（单例），部署时创建，只会被管理操作和拨付操作修改
type Campaign struct {
	Owner              string                  // 发起人地址，只能由当前发起人转移，不允许转给空地址
	EscrowAddress      string                  // 托管账户地址，出资都汇入该账户
	DeploymentTime     int64                   // 部署时间（unix秒），创建后不变
	Duration           int64                   // 窗口期（秒），DeploymentTime+Duration 为截止时刻
	FundingGoalUsd     *uint256.Int            // 目标金额（美元，1e18精度）
	MinContributionUsd *uint256.Int            // 单次出资的最小美元价值（1e18精度）
	FundsWithdrawn     bool                    // 资金是否已被发起人提走，只会置位一次，不会复位
	AuthorizedUpdater  string                  // 被授权强制改写账本的外部系统地址，未配置时为空
	Ledger             map[string]*uint256.Int // 出资人账本：地址 -> 累计出资额（原生值单位）
}

// 窗口是否开放
func (c *Campaign) IsOpen(now int64) bool {
	return now < c.DeploymentTime+c.Duration
}

// 窗口是否关闭，截止时刻本身算关闭
func (c *Campaign) IsClosed(now int64) bool {
	return now >= c.DeploymentTime+c.Duration
}

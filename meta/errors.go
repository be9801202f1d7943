package meta

import "errors"

// 托管操作的具名失败原因。所有失败都在状态变更之前被检查出来（转账失败除外），
// 任何失败都不会留下部分状态变更
var (
	ErrBelowMinimum       = errors.New("出资金额低于最小出资额")
	ErrCampaignClosed     = errors.New("众筹已结束")
	ErrCampaignStillOpen  = errors.New("众筹还未结束")
	ErrGoalNotMet         = errors.New("众筹目标未达成")
	ErrGoalWasMet         = errors.New("众筹目标已达成，无法退款")
	ErrNothingContributed = errors.New("该账户没有出资记录")
	ErrTransferFailed     = errors.New("转账失败")
	ErrNotOwner           = errors.New("非众筹发起人")
	ErrUnauthorized       = errors.New("非授权的账本更新方")
	ErrInvalidAddress     = errors.New("地址不能为空")
	ErrAlreadyWithdrawn   = errors.New("资金已被提走")
	ErrInvalidPrice       = errors.New("喂价报价非法")
	ErrAmountOverflow     = errors.New("金额换算溢出")
)

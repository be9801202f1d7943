package meta

import (
	"encoding/hex"

	"github.com/rjkris/go-jellyfish-merkletree/common"
)

// 需要写入状态树的数据
type JFTreeData interface {
	GetKey() common.HashValue
}

// 事件类型
const (
	EventContributed          = "Contributed"          // 出资
	EventWithdrawn            = "Withdrawn"            // 发起人提款
	EventRefunded             = "Refunded"             // 出资人退款
	EventOwnershipTransferred = "OwnershipTransferred" // 所有权转移
	EventUpdaterSet           = "UpdaterSet"           // 配置账本更新方
	EventBalanceOverridden    = "BalanceOverridden"    // 账本被强制改写
)

// 众筹事件，每次成功的状态变更都会产生一条
type Event struct {
	EventID     string                 // 事件ID（sha256，hex编码）
	Type        string                 // 事件类型
	FromAddress string                 // 触发方地址
	Data        map[string]interface{} // 事件参数
	TimeStamp   string
}

func (e Event) GetKey() common.HashValue {
	keyBytes, _ := hex.DecodeString(e.EventID)
	return common.BytesToHash(keyBytes)
}

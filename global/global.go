package global

import (
	"github.com/crowdfundV1/meta"
)

/*
 *	进程用到的全局变量
 */

var ChangedAccounts = []meta.JFTreeData{} // 本次操作需要更新到状态树的账户
var TreeData = []meta.JFTreeData{}        // 本次操作需要更新到状态树的事件

var EscrowLog = make(chan interface{}, 20) // 托管操作日志，会通过客户端推送到前端

/*
 * 以下参数根据命令行参数/配置文件确定，不要重新赋值
 */
var RootDir string     // 项目根目录
var ListenAddr string  // 对外服务监听地址
var StateDBPath string // 状态树存储路径，为空时不维护状态树
var StateRoot string   // 最近一次状态树根hash（hex编码）

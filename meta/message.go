package meta

type HttpResponse struct {
	Error string      `json:"error"` // 如果不为空代表错误信息
	Data  interface{} `json:"data"`
	Code  int         `json:"code"` // vue-element-admin的前端校验码，必须为20000
}

// 提交一笔出资
type PostContribution struct {
	From   string `json:"from"`
	Amount string `json:"amount"` // 十进制字符串，原生值单位
}

// 发起人提款
type PostWithdraw struct {
	From string `json:"from"`
}

// 出资人退款
type PostRefund struct {
	From string `json:"from"`
}

// 转移所有权
type PostOwnership struct {
	From     string `json:"from"`
	NewOwner string `json:"new_owner"`
}

// 配置账本更新方
type PostUpdater struct {
	From    string `json:"from"`
	Updater string `json:"updater"`
}

// 强制改写出资人账本
type PostBalanceUpdate struct {
	From        string `json:"from"`
	Contributor string `json:"contributor"`
	NewBalance  string `json:"new_balance"` // 十进制字符串，原生值单位
}

// 注册一个出资人账户
type PostRegister struct {
	PublicKey string `json:"public_key"`
	Balance   string `json:"balance"` // 初始余额，十进制字符串
}

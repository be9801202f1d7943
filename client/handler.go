package client

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/account"
	"github.com/crowdfundV1/event"
	"github.com/crowdfundV1/global"
	"github.com/crowdfundV1/merkle"
	"github.com/crowdfundV1/meta"
	"github.com/crowdfundV1/util"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method

		origin := c.Request.Header.Get("Origin")

		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type,AccessToken,X-CSRF-Token, Authorization") //自定义 Header
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Content-Type")
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if method == "OPTIONS" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Headers", "Content-Type,AccessToken,X-CSRF-Token, Authorization")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Content-Type")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.AbortWithStatus(http.StatusNoContent)
		}

		c.Next()
	}
}

// 提交一笔出资
func contribute(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	log.Infof("[client] 收到一笔出资: %s\n", string(b))

	pc := meta.PostContribution{}
	err := json.Unmarshal(b, &pc)
	if err != nil {
		log.Error("[contribute],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	amount, err := parseAmount(pc.Amount)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("金额非法"))
		return
	}
	if err := svc.Contribute(pc.From, amount); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(svc.LedgerEntry(pc.From).Dec()))
}

// 发起人提款
func withdraw(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	pw := meta.PostWithdraw{}
	err := json.Unmarshal(b, &pw)
	if err != nil {
		log.Error("[withdraw],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	amount, err := svc.Withdraw(pw.From)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(amount.Dec()))
}

// 出资人退款
func refund(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	pr := meta.PostRefund{}
	err := json.Unmarshal(b, &pr)
	if err != nil {
		log.Error("[refund],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	amount, err := svc.ClaimRefund(pr.From)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(amount.Dec()))
}

// 转移所有权
func transferOwnership(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	po := meta.PostOwnership{}
	err := json.Unmarshal(b, &po)
	if err != nil {
		log.Error("[transferOwnership],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	if err := svc.TransferOwnership(po.From, po.NewOwner); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 配置账本更新方
func setUpdater(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	pu := meta.PostUpdater{}
	err := json.Unmarshal(b, &pu)
	if err != nil {
		log.Error("[setUpdater],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	if err := svc.SetAuthorizedUpdater(pu.From, pu.Updater); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 强制改写出资人账本（仅授权更新方）
func updateBalance(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	pb := meta.PostBalanceUpdate{}
	err := json.Unmarshal(b, &pb)
	if err != nil {
		log.Error("[updateBalance],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	amount, err := parseAmount(pb.NewBalance)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("金额非法"))
		return
	}
	if err := svc.UpdateContributorBalance(pb.From, pb.Contributor, amount); err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	commitState()
	ctx.JSON(http.StatusOK, goodResponse(""))
}

// 注册出资人账户（由公钥生成地址）
func registerAccount(ctx *gin.Context) {
	b, _ := ctx.GetRawData()
	pr := meta.PostRegister{}
	err := json.Unmarshal(b, &pr)
	if err != nil {
		log.Error("[registerAccount],json decode err:", err)
		ctx.JSON(http.StatusOK, errResponse("请求参数解析失败"))
		return
	}
	if pr.PublicKey == "" {
		ctx.JSON(http.StatusOK, errResponse("公钥不能为空"))
		return
	}
	balance, err := parseAmount(pr.Balance)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("金额非法"))
		return
	}
	address := util.GenerateAddress(pr.PublicKey)
	if account.ContainsAddress(address) {
		ctx.JSON(http.StatusOK, errResponse("账户已存在"))
		return
	}
	acc := account.CreateAccount(address, pr.PublicKey, balance)
	ctx.JSON(http.StatusOK, goodResponse(acc.Address))
}

// 查询美元价值
func usdValue(ctx *gin.Context) {
	amount, err := parseAmount(ctx.Query("amount"))
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse("金额非法"))
		return
	}
	usd, err := svc.GetUsdValue(amount)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(usd.Dec()))
}

// 查询活动状态
func campaign(ctx *gin.Context) {
	c := svc.Campaign()
	ctx.JSON(http.StatusOK, goodResponse(map[string]interface{}{
		"campaign":        c,
		"custody_balance": svc.CustodyBalance().Dec(),
		"state_root":      global.StateRoot,
	}))
}

// 查询账户余额与账本数值
func balance(ctx *gin.Context) {
	address := ctx.Query("address")
	if address == "" {
		ctx.JSON(http.StatusOK, errResponse("地址不能为空"))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(map[string]interface{}{
		"balance":      account.GetBalance(address).Dec(),
		"ledger_entry": svc.LedgerEntry(address).Dec(),
	}))
}

// 查询历史事件
func events(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, goodResponse(event.All()))
}

// 查询某个地址在状态树中的存在性证明
func proof(ctx *gin.Context) {
	address := ctx.Query("address")
	if address == "" || global.StateDBPath == "" {
		ctx.JSON(http.StatusOK, errResponse("地址不能为空或未开启状态树"))
		return
	}
	value, prf, err := merkle.GetProofValue(address, merkle.CurrentVersion(), global.StateDBPath)
	if err != nil {
		ctx.JSON(http.StatusOK, errResponse(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, goodResponse(map[string]interface{}{
		"value": string(value),
		"proof": prf,
		"root":  global.StateRoot,
	}))
}

// 将本次操作变更的账户与事件写入状态树，更新根hash
func commitState() {
	if global.StateDBPath == "" {
		global.ChangedAccounts = []meta.JFTreeData{}
		global.TreeData = []meta.JFTreeData{}
		return
	}
	data := append(global.ChangedAccounts, global.TreeData...)
	if len(data) == 0 {
		return
	}
	root, err := merkle.UpdateStateTree(data, merkle.GetVersion(), global.StateDBPath)
	if err != nil {
		log.Errorf("state tree commit error: %s", err)
		return
	}
	global.StateRoot = hex.EncodeToString(root.Bytes())
	global.ChangedAccounts = []meta.JFTreeData{}
	global.TreeData = []meta.JFTreeData{}
}

// 正常响应，返回数据
func goodResponse(data interface{}) meta.HttpResponse {
	res := meta.HttpResponse{
		Data: data,
		Code: 20000,
	}
	return res
}

// 出现异常，返回异常信息
func errResponse(errMsg string) meta.HttpResponse {
	res := meta.HttpResponse{
		Error: errMsg,
		Data:  "",
		Code:  20000,
	}
	return res
}

// 解析十进制金额字符串，空串按零处理
func parseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return uint256.NewInt(0), nil
	}
	return uint256.FromDecimal(s)
}

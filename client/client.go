package client

import (
	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/escrow"
	"github.com/crowdfundV1/global"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

var svc *escrow.Escrow // 当前进程托管的众筹活动

// 监听用户请求
func ListenRequest(es *escrow.Escrow, tlsHost string) {
	svc = es
	r := gin.Default()
	r.Use(Cors()) // 使用跨域组件
	if tlsHost != "" {
		r.Use(TlsHandler(tlsHost)) // 重定向为https
	}
	r.POST("/contribute", contribute)                // 提交一笔出资
	r.POST("/withdraw", withdraw)                    // 发起人提款
	r.POST("/refund", refund)                        // 出资人退款
	r.POST("/transferOwnership", transferOwnership)  // 转移所有权
	r.POST("/setUpdater", setUpdater)                // 配置账本更新方
	r.POST("/updateBalance", updateBalance)          // 强制改写账本
	r.POST("/registerAccount", registerAccount)      // 注册出资人账户
	r.GET("/usdValue", usdValue)                     // 查询美元价值
	r.GET("/campaign", campaign)                     // 查询活动状态
	r.GET("/balance", balance)                       // 查询账户余额与账本数值
	r.GET("/events", events)                         // 查询历史事件
	r.GET("/proof", proof)                           // 查询账本的状态树存在性证明
	r.GET("/getLog", getLog)                         // 与前端建立websocket

	log.Infof("众筹托管服务已启动: %s", global.ListenAddr)
	r.Run(global.ListenAddr)
}

func TlsHandler(host string) gin.HandlerFunc {
	return func(c *gin.Context) {
		secureMiddleware := secure.New(secure.Options{
			SSLRedirect: true,
			SSLHost:     host,
		})
		err := secureMiddleware.Process(c.Writer, c.Request)

		// If there was an error, do not continue.
		if err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}

package client

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/global"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upGrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// 使用WebSocket向前端推送托管操作日志
func getLog(c *gin.Context) {
	// 升级请求为WebSocket协议
	ws, err := upGrader.Upgrade(c.Writer, c.Request, nil)

	// 清空历史日志
	for len(global.EscrowLog) != 0 {
		select {
		case <-global.EscrowLog:
		default:
		}
	}

	if err != nil {
		log.Info("Upgrade failed")
		return
	}
	// 5秒后断开websocket连接
	time.AfterFunc(5*time.Second, func() {
		ws.Close()
	})
	for {
		result := <-global.EscrowLog
		err = ws.WriteMessage(websocket.TextMessage, []byte(fmt.Sprint(result)))
		if err != nil {
			log.Info(err)
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
}

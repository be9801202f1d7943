package main

import (
	"flag"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/account"
	"github.com/crowdfundV1/client"
	"github.com/crowdfundV1/config"
	"github.com/crowdfundV1/escrow"
	"github.com/crowdfundV1/event"
	"github.com/crowdfundV1/global"
	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/oracle"
	"github.com/crowdfundV1/redis"
	"github.com/holiman/uint256"
)

func main() {
	Start()
}

func Start() {
	rootDir := flag.String("r", ".", "项目根目录")
	flag.Parse()
	global.RootDir = *rootDir

	global.ListenAddr = config.GetString("listen")
	global.StateDBPath = config.GetString("stateDbPath")

	levelDB.InitDB(config.GetString("dbPath"))
	redis.InitRedis(config.GetString("redis"))
	account.GetFromDisk()
	event.InitEventData()

	feed := buildFeed()

	// 已有活动则从磁盘恢复，否则按配置部署一个新活动
	es, ok := escrow.Restore(feed)
	if !ok {
		goal, err := uint256.FromDecimal(config.GetString("fundingGoalUsd"))
		if err != nil {
			log.Error("fundingGoalUsd 配置非法:", err)
			return
		}
		min, err := uint256.FromDecimal(config.GetString("minContributionUsd"))
		if err != nil {
			log.Error("minContributionUsd 配置非法:", err)
			return
		}
		es, err = escrow.New(
			config.GetString("owner"),
			config.GetString("escrowAddress"),
			config.GetInt64("durationSeconds"),
			goal,
			min,
			feed,
		)
		if err != nil {
			log.Error("众筹活动部署失败:", err)
			return
		}
	}

	client.ListenRequest(es, config.GetString("tlsHost"))
}

// 按配置选择喂价来源
func buildFeed() oracle.Feed {
	switch config.GetString("feedType") {
	case "http":
		return &oracle.HTTPFeed{URL: config.GetString("feedUrl")}
	case "fixed":
		return &oracle.FixedFeed{Quote: config.GetInt64("fixedQuote")}
	default:
		return oracle.NewRedisFeed(config.GetString("priceKey"))
	}
}

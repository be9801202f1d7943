package event

import (
	"encoding/json"
	"time"

	"github.com/prometheus/common/log"

	commonconst "github.com/crowdfundV1/common"
	"github.com/crowdfundV1/global"
	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/meta"
	"github.com/crowdfundV1/redis"
	"github.com/crowdfundV1/util"
)

var EventData map[string]meta.Event

func init() {
	EventData = map[string]meta.Event{}
}

func IsContainsKey(key string) bool {
	_, ok := EventData[key]
	return ok
}

// 进程启动时从磁盘恢复历史事件
func InitEventData() {
	dataBytes := levelDB.DBGet(commonconst.EventAllDataKey)
	_ = json.Unmarshal(dataBytes, &EventData)
	if EventData == nil {
		EventData = map[string]meta.Event{}
	}
}

// 记录一条众筹事件：持久化、加入状态树更新队列、推送redis队列和前端日志
func Record(eventType, from string, data map[string]interface{}) meta.Event {
	e := meta.Event{
		Type:        eventType,
		FromAddress: from,
		Data:        data,
		TimeStamp:   time.Now().Format(time.RFC3339),
	}
	e.EventID = util.CalculateEventID(e)
	EventData[e.EventID] = e
	putIntoDisk()
	global.TreeData = append(global.TreeData, e)

	eBytes, _ := json.Marshal(e)
	if err := redis.PushToList(commonconst.EventListKey, string(eBytes)); err != nil {
		log.Errorf("event push to redis error: %s", err)
	}
	select { // 前端日志通道满了就丢弃，不能阻塞正常操作
	case global.EscrowLog <- string(eBytes):
	default:
	}
	return e
}

// 返回所有事件（供链上查询服务使用）
func All() []meta.Event {
	events := make([]meta.Event, 0, len(EventData))
	for _, e := range EventData {
		events = append(events, e)
	}
	return events
}

func putIntoDisk() {
	bytes, err := json.Marshal(EventData)
	util.DealJsonErr("event.putIntoDisk", err)
	levelDB.DBPut(commonconst.EventAllDataKey, bytes)
}

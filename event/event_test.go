package event

import (
	"path/filepath"
	"testing"

	"github.com/crowdfundV1/global"
	"github.com/crowdfundV1/levelDB"
	"github.com/crowdfundV1/meta"
	"gotest.tools/assert"
)

func TestRecord(t *testing.T) {
	levelDB.InitDB(filepath.Join(t.TempDir(), "db"))

	e := Record(meta.EventContributed, "someAddress", map[string]interface{}{
		"amount": "1000000000000000000",
	})

	// 事件ID是sha256的hex编码
	assert.Equal(t, len(e.EventID), 64)
	assert.Assert(t, IsContainsKey(e.EventID))
	assert.Equal(t, len(All()), len(EventData))

	// 事件同时进入状态树更新队列和前端日志通道
	assert.Assert(t, len(global.TreeData) > 0)
	select {
	case <-global.EscrowLog:
	default:
		t.Error("event not pushed to escrow log channel")
	}
}

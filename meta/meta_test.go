package meta

import (
	"testing"

	"gotest.tools/assert"
)

func TestCampaignWindow(t *testing.T) {
	c := Campaign{
		DeploymentTime: 1000,
		Duration:       3600,
	}

	assert.Assert(t, c.IsOpen(1000))
	assert.Assert(t, c.IsOpen(4599))
	// 截止时刻本身算关闭
	assert.Assert(t, c.IsClosed(4600))
	assert.Assert(t, !c.IsOpen(4600))
	assert.Assert(t, c.IsClosed(4601))
}

func TestIsNullAddress(t *testing.T) {
	assert.Assert(t, IsNullAddress(""))
	assert.Assert(t, IsNullAddress("0"))
	assert.Assert(t, IsNullAddress("0000000000000000"))
	assert.Assert(t, !IsNullAddress("0001"))
	assert.Assert(t, !IsNullAddress("a1b2"))
}

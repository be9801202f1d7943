package config

import (
	"testing"

	"github.com/crowdfundV1/global"
	"gotest.tools/assert"
)

func TestGet(t *testing.T) {
	global.RootDir = ".."

	assert.Equal(t, GetString("listen"), ":8000")
	assert.Equal(t, GetInt64("durationSeconds"), int64(3600))
	assert.Equal(t, GetString("fundingGoalUsd"), "1000000000000000000000")
	assert.Assert(t, Get("redis") != nil)
}

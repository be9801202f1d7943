package util

import (
	"testing"

	"github.com/crowdfundV1/meta"
	"gotest.tools/assert"
)

func TestCalculateHash(t *testing.T) {
	h1, err := CalculateHash([]byte("hello"))
	assert.NilError(t, err)
	assert.Equal(t, len(h1), 32)

	h2, _ := CalculateHash([]byte("hello"))
	assert.DeepEqual(t, h1, h2)
}

func TestCalculateEventID(t *testing.T) {
	e := meta.Event{Type: meta.EventContributed, FromAddress: "abc"}
	id1 := CalculateEventID(e)
	id2 := CalculateEventID(e)

	assert.Equal(t, len(id1), 64)
	// 内容相同的事件因随机数不同也会得到不同的ID
	assert.Assert(t, id1 != id2)
}

func TestGenerateAddress(t *testing.T) {
	a1 := GenerateAddress("publicKeyA")
	a2 := GenerateAddress("publicKeyA")
	b := GenerateAddress("publicKeyB")

	assert.Equal(t, len(a1), 64)
	assert.Equal(t, a1, a2)
	assert.Assert(t, a1 != b)
}

func TestGetRandom(t *testing.T) {
	r := GetRandom()
	assert.Assert(t, r > 1000000000)
}

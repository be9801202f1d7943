package oracle

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crowdfundV1/meta"
	"github.com/holiman/uint256"
	"gotest.tools/assert"
)

func amount(n int64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(uint64(n)), uint256.NewInt(1e18))
}

func TestConvertToUsd(t *testing.T) {
	feed := &FixedFeed{Quote: 200000000000} // 2000美元/单位

	// 1单位 * 2000e8 / 1e8 = 2000美元（1e18精度）
	usd, err := ConvertToUsd(feed, amount(1))
	assert.NilError(t, err)
	assert.Equal(t, usd.Dec(), amount(2000).Dec())

	usd, err = ConvertToUsd(feed, amount(3))
	assert.NilError(t, err)
	assert.Equal(t, usd.Dec(), amount(6000).Dec())
}

func TestConvertToUsdZeroAmount(t *testing.T) {
	feed := &FixedFeed{Quote: 200000000000}

	usd, err := ConvertToUsd(feed, uint256.NewInt(0))
	assert.NilError(t, err)
	assert.Equal(t, usd.Dec(), "0")

	// nil金额按零处理
	usd, err = ConvertToUsd(feed, nil)
	assert.NilError(t, err)
	assert.Equal(t, usd.Dec(), "0")
}

// 报价小于等于零一律拒绝，不能让错误报价污染美元比较
func TestConvertToUsdRejectsBadQuote(t *testing.T) {
	_, err := ConvertToUsd(&FixedFeed{Quote: 0}, amount(1))
	assert.Equal(t, err, meta.ErrInvalidPrice)

	_, err = ConvertToUsd(&FixedFeed{Quote: -200000000000}, amount(1))
	assert.Equal(t, err, meta.ErrInvalidPrice)
}

func TestHTTPFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("5000000000\n"))
	}))
	defer server.Close()

	feed := &HTTPFeed{URL: server.URL}
	quote, err := feed.LatestQuote()
	assert.NilError(t, err)
	assert.Equal(t, quote, int64(5000000000))
}

func TestHTTPFeedBadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	feed := &HTTPFeed{URL: server.URL}
	_, err := feed.LatestQuote()
	assert.Assert(t, err != nil)
}

package oracle

import (
	"errors"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudflare/cfssl/log"
	commonconst "github.com/crowdfundV1/common"
	"github.com/crowdfundV1/meta"
	"github.com/crowdfundV1/redis"
	"github.com/holiman/uint256"
)

// 喂价报价带8位隐含小数，如 2000美元/单位 = 2000 * 1e8
const PriceDecimals = 8

var priceScale = uint256.NewInt(100000000)

// 外部喂价源，返回最新报价（有符号整数，8位隐含小数）
type Feed interface {
	LatestQuote() (int64, error)
}

// 固定报价喂价源
type FixedFeed struct {
	Quote int64
}

func (f *FixedFeed) LatestQuote() (int64, error) {
	return f.Quote, nil
}

// redis喂价源：外部喂价程序把最新报价写入指定key
type RedisFeed struct {
	Key string
}

func NewRedisFeed(key string) *RedisFeed {
	if key == "" {
		key = commonconst.PriceQuoteKey
	}
	return &RedisFeed{Key: key}
}

func (f *RedisFeed) LatestQuote() (int64, error) {
	val, err := redis.GetFromRedis(f.Key)
	if err != nil {
		return 0, err
	}
	if val == "" {
		return 0, errors.New("喂价key不存在")
	}
	return strconv.ParseInt(strings.TrimSpace(val), 10, 64)
}

// http喂价源：轮询喂价服务，响应体为十进制报价
type HTTPFeed struct {
	URL string
}

func (f *HTTPFeed) LatestQuote() (int64, error) {
	resp, err := http.Get(f.URL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, errors.New("喂价服务返回 " + resp.Status)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
}

// 将原生金额换算为美元价值：usd = amount * price / 1e8
// 每次调用都重新获取报价，不做缓存；报价小于等于零一律拒绝，
// 否则错误的报价会污染下游所有的美元比较
func ConvertToUsd(feed Feed, amount *uint256.Int) (*uint256.Int, error) {
	if amount == nil {
		amount = uint256.NewInt(0)
	}
	quote, err := feed.LatestQuote()
	if err != nil {
		log.Errorf("获取喂价失败: %s", err)
		return nil, err
	}
	if quote <= 0 {
		log.Errorf("非法喂价报价: %d", quote)
		return nil, meta.ErrInvalidPrice
	}
	price := uint256.NewInt(uint64(quote))
	usd, overflow := new(uint256.Int).MulDivOverflow(amount, price, priceScale)
	if overflow {
		return nil, meta.ErrAmountOverflow
	}
	return usd, nil
}

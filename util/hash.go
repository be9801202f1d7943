package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/meta"
)

//计算hash摘要
func CalculateHash(msg []byte) ([]byte, error) {
	h := sha256.New()
	if _, err := h.Write(msg); err != nil {
		log.Info(err)
		return nil, err
	}
	return h.Sum(nil), nil
}

//计算事件ID：事件内容加随机数做hash，hex编码后作为状态树的key
func CalculateEventID(e meta.Event) string {
	data, _ := json.Marshal(e)
	data = append(data, []byte(strconv.Itoa(GetRandom()))...)
	hashed, _ := CalculateHash(data)
	return hex.EncodeToString(hashed)
}

//由公钥生成账户地址（公钥hash的hex编码，256位）
func GenerateAddress(publicKey string) string {
	pubHash, _ := CalculateHash([]byte(publicKey))
	return hex.EncodeToString(pubHash)
}

package meta

import (
	"encoding/hex"

	"github.com/holiman/uint256"
	"github.com/rjkris/go-jellyfish-merkletree/common"
)

//账户

type Account struct {
	Address   string       //账户地址
	Balance   *uint256.Int //账户余额（原生值单位）
	PublicKey string       //账户公钥
	IsEscrow  bool         //是否为托管账户
}

func (a Account) GetKey() common.HashValue {
	keyBytes, _ := hex.DecodeString(a.Address)
	return common.BytesToHash(keyBytes)
}

// 空地址：空串或者全零串都算
func IsNullAddress(address string) bool {
	if address == "" {
		return true
	}
	for _, c := range address {
		if c != '0' {
			return false
		}
	}
	return true
}

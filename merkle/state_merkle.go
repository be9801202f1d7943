package merkle

import (
	"encoding/hex"
	"encoding/json"

	"github.com/cloudflare/cfssl/log"
	"github.com/crowdfundV1/meta"
	"github.com/rjkris/go-jellyfish-merkletree/common"
	"github.com/rjkris/go-jellyfish-merkletree/jellyfish"
)

var version uint64 = 0 // 只有在账户或事件变动时，版本号才加一

// 将变动的账户/事件写入状态树，返回新的根hash
func UpdateStateTree(data []meta.JFTreeData, version uint64, path string) (common.HashValue, error) {
	db := jellyfish.NewTreeStore(path)
	defer db.Db.Close()
	tree := jellyfish.JfMerkleTree{
		Reader: db,
		Value:  nil,
	}
	var kvs []jellyfish.ValueSetItem
	for _, item := range data {
		valueBytes, _ := json.Marshal(item)
		kvs = append(kvs, jellyfish.ValueSetItem{
			HashK: item.GetKey(),
			Value: jellyfish.ValueT{Value: valueBytes},
		})
	}
	rootHash, batch := tree.PutValueSet(kvs, jellyfish.Version(version))
	err := db.WriteTreeUpdateBatch(batch)
	if err != nil {
		log.Errorf("state tree update error: %s", err)
		return rootHash, err
	}
	return rootHash, nil
}

// 获取某个地址的账本数据和存在性证明
func GetProofValue(address string, version uint64, path string) ([]byte, jellyfish.SparseMerkleProof, error) {
	db := jellyfish.NewTreeStore(path)
	defer db.Db.Close()
	tree := jellyfish.JfMerkleTree{Reader: db, Value: nil}
	addressBytes, _ := hex.DecodeString(address)
	k := common.BytesToHash(addressBytes)
	proofValue, proof := tree.GetWithProof(k, jellyfish.Version(version))
	return proofValue.GetValue(), proof, nil
}

// 存在性验证
func ProofVerify(rootHash common.HashValue, proof jellyfish.SparseMerkleProof, address string, value meta.JFTreeData) (bool, error) {
	addressBytes, _ := hex.DecodeString(address)
	k := common.BytesToHash(addressBytes)
	dataBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("state data marshal error: %s", err)
		return false, err
	}
	res := proof.Verify(rootHash, k, jellyfish.ValueT{Value: dataBytes})
	return res, nil
}

func GetVersion() uint64 {
	curr := version
	version++
	return curr
}

// 最近一次已提交的版本号
func CurrentVersion() uint64 {
	if version == 0 {
		return 0
	}
	return version - 1
}

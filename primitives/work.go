package primitives

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Work is a mining job returned by getWork. Data is the hex block header
// to hash and Suffix the hex bytes to append before hashing.
type Work struct {
	Data      string `json:"data"`
	Suffix    string `json:"suffix"`
	Target    uint32 `json:"target"`
	Algorithm string `json:"algorithm"`
}

type BlockHeaderTemplate struct {
	Version       int    `json:"version"`
	PrevHash      string `json:"prevHash"`
	InterlinkHash string `json:"interlinkHash"`
	AccountsHash  string `json:"accountsHash"`
	NBits         uint32 `json:"nBits"`
	Height        int64  `json:"height"`
}

// BlockBodyTemplate carries MerkleHashes, the proof that lets a miner
// replace MinerAddr without recomputing the body hash from scratch.
type BlockBodyTemplate struct {
	Hash           string   `json:"hash"`
	MinerAddr      string   `json:"minerAddr"`
	ExtraData      string   `json:"extraData"`
	Transactions   []string `json:"transactions"`
	PrunedAccounts []string `json:"prunedAccounts"`
	MerkleHashes   []string `json:"merkleHashes"`
}

type BlockTemplate struct {
	Header    BlockHeaderTemplate `json:"header"`
	Interlink string              `json:"interlink"`
	Body      BlockBodyTemplate   `json:"body"`
	Target    uint32              `json:"target"`
}

// MaxTarget is the easiest proof-of-work target, 2^240.
var MaxTarget = new(big.Int).Lsh(big.NewInt(1), 240)

// CompactToTarget expands a compact target: the low 24 bits are the
// significand and the high byte the size in bytes.
func CompactToTarget(compact uint32) *big.Int {
	target := big.NewInt(int64(compact & 0xffffff))
	shift := 8 * (int(compact>>24) - 3)
	if shift >= 0 {
		return target.Lsh(target, uint(shift))
	}
	return target.Rsh(target, uint(-shift))
}

// TargetToDifficulty returns MaxTarget / target. A zero target yields a
// zero difficulty.
func TargetToDifficulty(target *big.Int) decimal.Decimal {
	if target == nil || target.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(MaxTarget, 0).DivRound(decimal.NewFromBigInt(target, 0), 8)
}

package primitives

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const MaxExtraDataSize = 255

type Block struct {
	Number        int64
	Hash          string
	PoW           string
	ParentHash    string
	Nonce         uint32
	BodyHash      string
	AccountsHash  string
	Miner         Address
	Difficulty    decimal.Decimal
	ExtraData     string
	Size          int
	Timestamp     int64
	Confirmations int
	Transactions  []TransactionRef
}

type blockJSON struct {
	Number        int64            `json:"number"`
	Hash          string           `json:"hash"`
	PoW           string           `json:"pow"`
	ParentHash    string           `json:"parentHash"`
	Nonce         uint32           `json:"nonce"`
	BodyHash      string           `json:"bodyHash"`
	AccountsHash  string           `json:"accountsHash"`
	Miner         string           `json:"miner"`
	MinerAddress  string           `json:"minerAddress"`
	Difficulty    decimal.Decimal  `json:"difficulty"`
	ExtraData     string           `json:"extraData"`
	Size          int              `json:"size"`
	Timestamp     int64            `json:"timestamp"`
	Confirmations int              `json:"confirmations"`
	Transactions  []TransactionRef `json:"transactions"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var aux blockJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	miner, err := resolveAddress("miner", aux.Miner, aux.MinerAddress)
	if err != nil {
		return err
	}
	if err := validateExtraData(aux.ExtraData); err != nil {
		return &FieldError{Field: "extraData", Err: err}
	}
	*b = Block{
		Number:        aux.Number,
		Hash:          aux.Hash,
		PoW:           aux.PoW,
		ParentHash:    aux.ParentHash,
		Nonce:         aux.Nonce,
		BodyHash:      aux.BodyHash,
		AccountsHash:  aux.AccountsHash,
		Miner:         miner,
		Difficulty:    aux.Difficulty,
		ExtraData:     aux.ExtraData,
		Size:          aux.Size,
		Timestamp:     aux.Timestamp,
		Confirmations: aux.Confirmations,
		Transactions:  aux.Transactions,
	}
	return nil
}

// TransactionHashes lists the hashes of the block's transactions in order,
// whether or not the full objects were requested.
func (b *Block) TransactionHashes() []string {
	hashes := make([]string, len(b.Transactions))
	for i, ref := range b.Transactions {
		hashes[i] = ref.Hash
	}
	return hashes
}

// FullTransactions returns the transaction objects of the block. It is
// empty if the block was fetched with hashes only.
func (b *Block) FullTransactions() []*Transaction {
	var txs []*Transaction
	for _, ref := range b.Transactions {
		if ref.Transaction != nil {
			txs = append(txs, ref.Transaction)
		}
	}
	return txs
}

func (b *Block) Time() time.Time {
	return time.Unix(b.Timestamp, 0)
}

func validateExtraData(s string) error {
	if s == "" {
		return nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) > MaxExtraDataSize {
		return errors.Errorf("%d bytes exceeds the maximum of %d", len(raw), MaxExtraDataSize)
	}
	return nil
}

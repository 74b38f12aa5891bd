package primitives

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// FlagContractCreation marks a transaction that creates a contract account.
const FlagContractCreation = 0x1

// TransactionBlock locates a mined transaction.
type TransactionBlock struct {
	Hash          string
	Number        int64
	Timestamp     int64
	Confirmations int
	Index         int
}

// Transaction is a transaction as reported by the node. Block is nil while
// the transaction is pending.
type Transaction struct {
	Hash  string
	Block *TransactionBlock
	From  Address
	To    Address
	Value int64
	Fee   int64
	Data  string
	Flags int
}

type transactionJSON struct {
	Hash             string `json:"hash"`
	BlockHash        string `json:"blockHash"`
	BlockNumber      int64  `json:"blockNumber"`
	Timestamp        int64  `json:"timestamp"`
	Confirmations    int    `json:"confirmations"`
	TransactionIndex int    `json:"transactionIndex"`
	From             string `json:"from"`
	FromAddress      string `json:"fromAddress"`
	To               string `json:"to"`
	ToAddress        string `json:"toAddress"`
	Value            int64  `json:"value"`
	Fee              int64  `json:"fee"`
	Data             string `json:"data"`
	Flags            int    `json:"flags"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var aux transactionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	from, err := resolveAddress("from", aux.From, aux.FromAddress)
	if err != nil {
		return err
	}
	to, err := resolveAddress("to", aux.To, aux.ToAddress)
	if err != nil {
		return err
	}
	if aux.Data != "" {
		if _, err := hex.DecodeString(aux.Data); err != nil {
			return &FieldError{Field: "data", Err: err}
		}
	}
	*t = Transaction{
		Hash:  aux.Hash,
		From:  from,
		To:    to,
		Value: aux.Value,
		Fee:   aux.Fee,
		Data:  aux.Data,
		Flags: aux.Flags,
	}
	if aux.BlockHash != "" {
		t.Block = &TransactionBlock{
			Hash:          aux.BlockHash,
			Number:        aux.BlockNumber,
			Timestamp:     aux.Timestamp,
			Confirmations: aux.Confirmations,
			Index:         aux.TransactionIndex,
		}
	}
	return nil
}

func (t *Transaction) Pending() bool {
	return t.Block == nil
}

func (t *Transaction) IsContractCreation() bool {
	return t.Flags&FlagContractCreation != 0
}

// DataBytes returns the decoded data field, or nil if there is none.
func (t *Transaction) DataBytes() []byte {
	if t.Data == "" {
		return nil
	}
	b, _ := hex.DecodeString(t.Data)
	return b
}

// RawTransactionInfo is the node's view of a serialized transaction that
// has not necessarily been broadcast.
type RawTransactionInfo struct {
	Transaction
	Valid     bool
	InMempool bool
}

func (r *RawTransactionInfo) UnmarshalJSON(data []byte) error {
	var tx Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return err
	}
	flags := struct {
		Valid     *bool `json:"valid"`
		InMempool bool  `json:"inMempool"`
	}{}
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	r.Transaction = tx
	r.Valid = flags.Valid == nil || *flags.Valid
	r.InMempool = flags.InMempool
	return nil
}

// TransactionRef is an element of a transaction list that the node returns
// either as bare hashes or as full objects. Transaction is nil for hashes.
type TransactionRef struct {
	Hash        string
	Transaction *Transaction
}

func (r *TransactionRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty transaction reference")
	}
	switch data[0] {
	case '"':
		var hash string
		if err := json.Unmarshal(data, &hash); err != nil {
			return err
		}
		*r = TransactionRef{Hash: hash}
		return nil
	case '{':
		tx := new(Transaction)
		if err := json.Unmarshal(data, tx); err != nil {
			return err
		}
		*r = TransactionRef{Hash: tx.Hash, Transaction: tx}
		return nil
	default:
		return errors.Errorf("transaction reference must be a hash or an object, got %s", data)
	}
}

// TransactionReceipt confirms the inclusion of a transaction in a block.
type TransactionReceipt struct {
	TransactionHash  string `json:"transactionHash"`
	TransactionIndex int    `json:"transactionIndex"`
	BlockHash        string `json:"blockHash"`
	BlockNumber      int64  `json:"blockNumber"`
	Confirmations    int    `json:"confirmations"`
	Timestamp        int64  `json:"timestamp"`
}

package cli

import (
	"strconv"
	"time"

	"nimiq/coin"
	"nimiq/primitives"
)

func FormatTime(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

func FormatAmount(lunas int64) string {
	return coin.FormatLunas(lunas) + " " + coin.Symbol
}

func TransactionRows(tx *primitives.Transaction) [][]string {
	rows := [][]string{
		{"Hash", tx.Hash},
		{"From", tx.From.Friendly()},
		{"To", tx.To.Friendly()},
		{"Value", FormatAmount(tx.Value)},
		{"Fee", FormatAmount(tx.Fee)},
		{"Flags", strconv.Itoa(tx.Flags)},
	}
	if tx.Data != "" {
		rows = append(rows, []string{"Data", tx.Data})
	}
	if tx.Block == nil {
		return append(rows, []string{"Status", "pending"})
	}
	return append(rows,
		[]string{"Block", strconv.FormatInt(tx.Block.Number, 10) + " (" + tx.Block.Hash + ")"},
		[]string{"Index", strconv.Itoa(tx.Block.Index)},
		[]string{"Time", FormatTime(tx.Block.Timestamp)},
		[]string{"Confirmations", strconv.Itoa(tx.Block.Confirmations)},
	)
}

// TransactionListRows renders one row per transaction under
// TransactionListHeader.
func TransactionListRows(txs []*primitives.Transaction) [][]string {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		height := "pending"
		if tx.Block != nil {
			height = strconv.FormatInt(tx.Block.Number, 10)
		}
		rows = append(rows, []string{tx.Hash, height, tx.From.Friendly(), tx.To.Friendly(), FormatAmount(tx.Value)})
	}
	return rows
}

var TransactionListHeader = []string{"Hash", "Block", "From", "To", "Value"}

func BlockRows(b *primitives.Block) [][]string {
	return [][]string{
		{"Number", strconv.FormatInt(b.Number, 10)},
		{"Hash", b.Hash},
		{"Parent Hash", b.ParentHash},
		{"Miner", b.Miner.Friendly()},
		{"Difficulty", b.Difficulty.String()},
		{"Time", FormatTime(b.Timestamp)},
		{"Size", strconv.Itoa(b.Size)},
		{"Transactions", strconv.Itoa(len(b.Transactions))},
		{"Confirmations", strconv.Itoa(b.Confirmations)},
		{"Extra Data", b.ExtraData},
	}
}

var PeerListHeader = []string{"ID", "Address", "Address State", "Connection", "Latency", "Rx", "Tx"}

func PeerRow(p *primitives.PeerInfo) []string {
	conn := ""
	if p.ConnectionState != 0 {
		conn = p.ConnectionState.String()
	}
	return []string{
		p.ID,
		p.Address,
		p.AddressState.String(),
		conn,
		strconv.Itoa(p.Latency),
		strconv.FormatInt(p.RX, 10),
		strconv.FormatInt(p.TX, 10),
	}
}

func AccountRows(acct primitives.Account) [][]string {
	info := acct.Info()
	rows := [][]string{
		{"Address", info.Address.Friendly()},
		{"Type", acct.Type().String()},
		{"Balance", FormatAmount(info.Balance)},
	}
	switch a := acct.(type) {
	case *primitives.VestingAccount:
		rows = append(rows,
			[]string{"Owner", a.Owner.Friendly()},
			[]string{"Vesting Start", strconv.FormatInt(a.VestingStart, 10)},
			[]string{"Vesting Step Blocks", strconv.FormatInt(a.VestingStepBlocks, 10)},
			[]string{"Vesting Step Amount", FormatAmount(a.VestingStepAmount)},
			[]string{"Vesting Total Amount", FormatAmount(a.VestingTotalAmount)},
		)
	case *primitives.HTLCAccount:
		rows = append(rows,
			[]string{"Sender", a.Sender.Friendly()},
			[]string{"Recipient", a.Recipient.Friendly()},
			[]string{"Hash Root", a.HashRoot},
			[]string{"Hash Count", strconv.Itoa(a.HashCount)},
			[]string{"Timeout", strconv.FormatInt(a.Timeout, 10)},
			[]string{"Total Amount", FormatAmount(a.TotalAmount)},
		)
	}
	return rows
}

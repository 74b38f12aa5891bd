package tx

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/coin"
	"nimiq/primitives"
)

type outgoingFlags struct {
	from     string
	fromType int
	to       string
	toType   int
	value    string
	fee      string
	data     string
	flags    int
}

func (f *outgoingFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.from, "from", "", "Sending address, which must be held by the node")
	c.Flags().IntVar(&f.fromType, "from-type", 0, "Account type of the sender (0 basic, 1 vesting, 2 htlc)")
	c.Flags().StringVar(&f.to, "to", "", "Recipient address")
	c.Flags().IntVar(&f.toType, "to-type", 0, "Account type of the recipient (0 basic, 1 vesting, 2 htlc)")
	c.Flags().StringVar(&f.value, "value", "", "Amount to send in NIM")
	c.Flags().StringVar(&f.fee, "fee", "0", "Fee in NIM")
	c.Flags().StringVar(&f.data, "data", "", "Hex-encoded extra data")
	c.Flags().IntVar(&f.flags, "flags", 0, "Transaction flags")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	_ = c.MarkFlagRequired("value")
}

func (f *outgoingFlags) transaction() (*primitives.OutgoingTransaction, error) {
	from, err := primitives.ParseAddress(f.from)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sender")
	}
	to, err := primitives.ParseAddress(f.to)
	if err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}
	value, err := coin.ParseCoins(f.value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid value")
	}
	fee, err := coin.ParseCoins(f.fee)
	if err != nil {
		return nil, errors.Wrap(err, "invalid fee")
	}
	return &primitives.OutgoingTransaction{
		From:     from,
		FromType: primitives.AccountType(f.fromType),
		To:       to,
		ToType:   primitives.AccountType(f.toType),
		Value:    value,
		Fee:      fee,
		Data:     f.data,
		Flags:    f.flags,
	}, nil
}

var sendFlags outgoingFlags

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Creates, signs and broadcasts a transaction from an account held by the node.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := sendFlags.transaction()
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		hash, err := env.Client.SendTransaction(cmd.Context(), tx)
		if err != nil {
			return err
		}
		return printHash(env, hash)
	},
}

var createRawFlags outgoingFlags

var createRawCmd = &cobra.Command{
	Use:   "create-raw",
	Short: "Creates and signs a transaction without broadcasting it.",
	Long: `Creates and signs a transaction from an account held by the node and prints
its serialized form as hex. Use send-raw to broadcast it later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := createRawFlags.transaction()
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		raw, err := env.Client.CreateRawTransaction(cmd.Context(), tx)
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]string{"raw": raw}, func() {
			env.Out.Line("%s", raw)
		})
	},
}

func printHash(env *cli.Env, hash string) error {
	return env.Out.Print(map[string]string{"hash": hash}, func() {
		env.Out.Line("%s", hash)
	})
}

func init() {
	sendFlags.register(sendCmd)
	createRawFlags.register(createRawCmd)
	cmd.AddCommand(sendCmd)
	cmd.AddCommand(createRawCmd)
}

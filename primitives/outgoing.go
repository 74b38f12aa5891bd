package primitives

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// OutgoingTransaction describes a transaction for the node to create or
// send on behalf of one of its accounts.
type OutgoingTransaction struct {
	From     Address     `validate:"required"`
	FromType AccountType `validate:"gte=0,lte=2"`
	To       Address     `validate:"required"`
	ToType   AccountType `validate:"gte=0,lte=2"`
	Value    int64       `validate:"gt=0"`
	Fee      int64       `validate:"gte=0"`
	Data     string      `validate:"omitempty,hexadecimal"`
	Flags    int         `validate:"gte=0"`
}

var validate = validator.New()

// Validate rejects transactions the node would refuse to build.
func (tx *OutgoingTransaction) Validate() error {
	err := validate.Struct(tx)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.Errorf("invalid transaction: %s", strings.Join(msgs, ", "))
}

func (tx OutgoingTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		From     string      `json:"from"`
		FromType AccountType `json:"fromType,omitempty"`
		To       string      `json:"to"`
		ToType   AccountType `json:"toType,omitempty"`
		Value    int64       `json:"value"`
		Fee      int64       `json:"fee"`
		Data     string      `json:"data,omitempty"`
		Flags    int         `json:"flags,omitempty"`
	}{
		From:     tx.From.Friendly(),
		FromType: tx.FromType,
		To:       tx.To.Friendly(),
		ToType:   tx.ToType,
		Value:    tx.Value,
		Fee:      tx.Fee,
		Data:     tx.Data,
		Flags:    tx.Flags,
	})
}

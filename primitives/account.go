package primitives

import (
	"encoding/json"
)

// Account is one of *BasicAccount, *VestingAccount or *HTLCAccount. Use a
// type switch to reach the variant fields.
type Account interface {
	Type() AccountType
	Info() *AccountInfo
	sealed()
}

// AccountInfo holds the fields shared by every account variant.
type AccountInfo struct {
	Address Address
	Balance int64
}

func (i *AccountInfo) Info() *AccountInfo {
	return i
}

func (*AccountInfo) sealed() {}

type BasicAccount struct {
	AccountInfo
}

func (*BasicAccount) Type() AccountType {
	return AccountTypeBasic
}

// VestingAccount releases VestingStepAmount lunas to Owner every
// VestingStepBlocks blocks, starting at height VestingStart.
type VestingAccount struct {
	AccountInfo
	Owner              Address
	VestingStart       int64
	VestingStepBlocks  int64
	VestingStepAmount  int64
	VestingTotalAmount int64
}

func (*VestingAccount) Type() AccountType {
	return AccountTypeVesting
}

// HTLCAccount is a hashed time-locked contract.
type HTLCAccount struct {
	AccountInfo
	Sender      Address
	Recipient   Address
	HashRoot    string
	HashCount   int
	Timeout     int64
	TotalAmount int64
}

func (*HTLCAccount) Type() AccountType {
	return AccountTypeHTLC
}

type accountHeader struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Balance int64  `json:"balance"`
	Type    *int   `json:"type"`
}

type vestingFields struct {
	Owner              string `json:"owner"`
	OwnerAddress       string `json:"ownerAddress"`
	VestingStart       int64  `json:"vestingStart"`
	VestingStepBlocks  int64  `json:"vestingStepBlocks"`
	VestingStepAmount  int64  `json:"vestingStepAmount"`
	VestingTotalAmount int64  `json:"vestingTotalAmount"`
}

type htlcFields struct {
	Sender           string `json:"sender"`
	SenderAddress    string `json:"senderAddress"`
	Recipient        string `json:"recipient"`
	RecipientAddress string `json:"recipientAddress"`
	HashRoot         string `json:"hashRoot"`
	HashCount        int    `json:"hashCount"`
	Timeout          int64  `json:"timeout"`
	TotalAmount      int64  `json:"totalAmount"`
}

// DecodeAccount reads the type discriminant of an account object and then
// decodes only the fields of the matching variant.
func DecodeAccount(data []byte) (Account, error) {
	var hdr accountHeader
	if err := json.Unmarshal(data, &hdr); err != nil {
		return nil, err
	}
	if hdr.Type == nil {
		return nil, &FieldError{Field: "type", Err: ErrMissingField}
	}
	typ, err := ParseAccountType(*hdr.Type)
	if err != nil {
		return nil, err
	}
	addr, err := resolveAddress("id", hdr.ID, hdr.Address)
	if err != nil {
		return nil, err
	}
	info := AccountInfo{Address: addr, Balance: hdr.Balance}

	switch typ {
	case AccountTypeVesting:
		var f vestingFields
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		owner, err := resolveAddress("owner", f.Owner, f.OwnerAddress)
		if err != nil {
			return nil, err
		}
		return &VestingAccount{
			AccountInfo:        info,
			Owner:              owner,
			VestingStart:       f.VestingStart,
			VestingStepBlocks:  f.VestingStepBlocks,
			VestingStepAmount:  f.VestingStepAmount,
			VestingTotalAmount: f.VestingTotalAmount,
		}, nil
	case AccountTypeHTLC:
		var f htlcFields
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		sender, err := resolveAddress("sender", f.Sender, f.SenderAddress)
		if err != nil {
			return nil, err
		}
		recipient, err := resolveAddress("recipient", f.Recipient, f.RecipientAddress)
		if err != nil {
			return nil, err
		}
		return &HTLCAccount{
			AccountInfo: info,
			Sender:      sender,
			Recipient:   recipient,
			HashRoot:    f.HashRoot,
			HashCount:   f.HashCount,
			Timeout:     f.Timeout,
			TotalAmount: f.TotalAmount,
		}, nil
	default:
		return &BasicAccount{AccountInfo: info}, nil
	}
}

// AccountList decodes a JSON array of accounts of mixed types.
type AccountList []Account

func (l *AccountList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(AccountList, 0, len(raw))
	for _, item := range raw {
		acct, err := DecodeAccount(item)
		if err != nil {
			return err
		}
		out = append(out, acct)
	}
	*l = out
	return nil
}

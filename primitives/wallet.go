package primitives

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// Wallet is a key pair held by the node. PrivateKey is only set on the
// result of createAccount.
type Wallet struct {
	Address    Address
	PublicKey  string
	PrivateKey string
}

func (w *Wallet) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID         string `json:"id"`
		Address    string `json:"address"`
		PublicKey  string `json:"publicKey"`
		PrivateKey string `json:"privateKey"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	addr, err := resolveAddress("id", aux.ID, aux.Address)
	if err != nil {
		return err
	}
	*w = Wallet{Address: addr, PublicKey: aux.PublicKey, PrivateKey: aux.PrivateKey}
	return nil
}

// VerifyAddress checks that Address derives from PublicKey.
func (w *Wallet) VerifyAddress() error {
	pub, err := hex.DecodeString(w.PublicKey)
	if err != nil {
		return errors.Wrap(err, "invalid public key")
	}
	derived, err := AddressFromPublicKey(pub)
	if err != nil {
		return err
	}
	if derived != w.Address {
		return errors.Errorf("address %s does not belong to public key %s", w.Address, w.PublicKey)
	}
	return nil
}

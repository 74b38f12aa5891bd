package primitives

// PeerInfo describes a peer known to the node. ConnectionState is zero for
// peers the node never connected to.
type PeerInfo struct {
	ID              string          `json:"id"`
	Address         string          `json:"address"`
	AddressState    AddressState    `json:"addressState"`
	ConnectionState ConnectionState `json:"connectionState"`
	Version         int             `json:"version"`
	TimeOffset      int64           `json:"timeOffset"`
	HeadHash        string          `json:"headHash"`
	Latency         int             `json:"latency"`
	RX              int64           `json:"rx"`
	TX              int64           `json:"tx"`
}

func (p *PeerInfo) Connected() bool {
	return p.ConnectionState == ConnectionStateEstablished
}

func (p *PeerInfo) Banned() bool {
	return p.AddressState == AddressStateBanned
}

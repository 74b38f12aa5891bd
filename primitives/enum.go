package primitives

import (
	"encoding/json"
	"strings"
)

func decodeIntCode(enum string, b []byte) (int, bool, error) {
	if string(b) == "null" {
		return 0, false, nil
	}
	var code int
	if err := json.Unmarshal(b, &code); err != nil {
		return 0, false, &EnumError{Enum: enum, Value: string(b)}
	}
	return code, true, nil
}

func decodeStringCode(enum string, b []byte) (string, bool, error) {
	if string(b) == "null" {
		return "", false, nil
	}
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return "", false, &EnumError{Enum: enum, Value: string(b)}
	}
	return strings.ToLower(code), true, nil
}

// AccountType discriminates the account variants. The wire codes are the
// values themselves.
type AccountType int

const (
	AccountTypeBasic   AccountType = 0
	AccountTypeVesting AccountType = 1
	AccountTypeHTLC    AccountType = 2
)

var accountTypeNames = map[AccountType]string{
	AccountTypeBasic:   "basic",
	AccountTypeVesting: "vesting",
	AccountTypeHTLC:    "htlc",
}

func ParseAccountType(code int) (AccountType, error) {
	t := AccountType(code)
	if _, ok := accountTypeNames[t]; !ok {
		return 0, &EnumError{Enum: "AccountType", Value: code}
	}
	return t, nil
}

func (t AccountType) String() string {
	if name, ok := accountTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t *AccountType) UnmarshalJSON(b []byte) error {
	code, ok, err := decodeIntCode("AccountType", b)
	if err != nil || !ok {
		return err
	}
	parsed, err := ParseAccountType(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AddressState is the node's view of a peer address. The zero value means
// the node did not report a state.
type AddressState int

const (
	AddressStateNew         AddressState = 1
	AddressStateEstablished AddressState = 2
	AddressStateTried       AddressState = 3
	AddressStateFailed      AddressState = 4
	AddressStateBanned      AddressState = 5
)

var addressStates = map[int]AddressState{
	1: AddressStateNew,
	2: AddressStateEstablished,
	3: AddressStateTried,
	4: AddressStateFailed,
	5: AddressStateBanned,
}

var addressStateNames = map[AddressState]string{
	AddressStateNew:         "new",
	AddressStateEstablished: "established",
	AddressStateTried:       "tried",
	AddressStateFailed:      "failed",
	AddressStateBanned:      "banned",
}

func ParseAddressState(code int) (AddressState, error) {
	s, ok := addressStates[code]
	if !ok {
		return 0, &EnumError{Enum: "AddressState", Value: code}
	}
	return s, nil
}

func (s AddressState) String() string {
	if name, ok := addressStateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s *AddressState) UnmarshalJSON(b []byte) error {
	code, ok, err := decodeIntCode("AddressState", b)
	if err != nil || !ok {
		return err
	}
	parsed, err := ParseAddressState(code)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConnectionState is the state of the node's connection to a peer. The zero
// value means the node has no connection to report.
type ConnectionState int

const (
	ConnectionStateNew         ConnectionState = 1
	ConnectionStateConnecting  ConnectionState = 2
	ConnectionStateConnected   ConnectionState = 3
	ConnectionStateNegotiating ConnectionState = 4
	ConnectionStateEstablished ConnectionState = 5
	ConnectionStateClosed      ConnectionState = 6
)

var connectionStates = map[int]ConnectionState{
	1: ConnectionStateNew,
	2: ConnectionStateConnecting,
	3: ConnectionStateConnected,
	4: ConnectionStateNegotiating,
	5: ConnectionStateEstablished,
	6: ConnectionStateClosed,
}

var connectionStateNames = map[ConnectionState]string{
	ConnectionStateNew:         "new",
	ConnectionStateConnecting:  "connecting",
	ConnectionStateConnected:   "connected",
	ConnectionStateNegotiating: "negotiating",
	ConnectionStateEstablished: "established",
	ConnectionStateClosed:      "closed",
}

func ParseConnectionState(code int) (ConnectionState, error) {
	s, ok := connectionStates[code]
	if !ok {
		return 0, &EnumError{Enum: "ConnectionState", Value: code}
	}
	return s, nil
}

func (s ConnectionState) String() string {
	if name, ok := connectionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s *ConnectionState) UnmarshalJSON(b []byte) error {
	code, ok, err := decodeIntCode("ConnectionState", b)
	if err != nil || !ok {
		return err
	}
	parsed, err := ParseConnectionState(code)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConsensusState is reported by the node as a lower-case string.
type ConsensusState string

const (
	ConsensusConnecting  ConsensusState = "connecting"
	ConsensusSyncing     ConsensusState = "syncing"
	ConsensusEstablished ConsensusState = "established"
)

var consensusStates = map[string]ConsensusState{
	"connecting":  ConsensusConnecting,
	"syncing":     ConsensusSyncing,
	"established": ConsensusEstablished,
}

func (s *ConsensusState) UnmarshalJSON(b []byte) error {
	code, ok, err := decodeStringCode("ConsensusState", b)
	if err != nil || !ok {
		return err
	}
	parsed, found := consensusStates[code]
	if !found {
		return &EnumError{Enum: "ConsensusState", Value: code}
	}
	*s = parsed
	return nil
}

// PoolConnectionState is the state of the node's connection to a mining
// pool.
type PoolConnectionState int

const (
	PoolConnected  PoolConnectionState = 0
	PoolConnecting PoolConnectionState = 1
	PoolClosed     PoolConnectionState = 2
)

var poolConnectionStateNames = map[PoolConnectionState]string{
	PoolConnected:  "connected",
	PoolConnecting: "connecting",
	PoolClosed:     "closed",
}

func (s PoolConnectionState) String() string {
	if name, ok := poolConnectionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s *PoolConnectionState) UnmarshalJSON(b []byte) error {
	code, ok, err := decodeIntCode("PoolConnectionState", b)
	if err != nil {
		return err
	}
	if !ok {
		return &EnumError{Enum: "PoolConnectionState", Value: nil}
	}
	state := PoolConnectionState(code)
	if _, known := poolConnectionStateNames[state]; !known {
		return &EnumError{Enum: "PoolConnectionState", Value: code}
	}
	*s = state
	return nil
}

// PeerStateCommand changes the node's connection to a peer.
type PeerStateCommand string

const (
	PeerConnect    PeerStateCommand = "connect"
	PeerDisconnect PeerStateCommand = "disconnect"
	PeerBan        PeerStateCommand = "ban"
	PeerUnban      PeerStateCommand = "unban"
)

func ParsePeerStateCommand(s string) (PeerStateCommand, error) {
	switch cmd := PeerStateCommand(strings.ToLower(s)); cmd {
	case PeerConnect, PeerDisconnect, PeerBan, PeerUnban:
		return cmd, nil
	default:
		return "", &EnumError{Enum: "PeerStateCommand", Value: s}
	}
}

// NodeLogLevel is a log level understood by the node's log command.
type NodeLogLevel string

const (
	NodeLogTrace   NodeLogLevel = "trace"
	NodeLogVerbose NodeLogLevel = "verbose"
	NodeLogDebug   NodeLogLevel = "debug"
	NodeLogInfo    NodeLogLevel = "info"
	NodeLogWarn    NodeLogLevel = "warn"
	NodeLogError   NodeLogLevel = "error"
	NodeLogAssert  NodeLogLevel = "assert"
)

// AllLogTags selects every log tag of the node.
const AllLogTags = "*"

func ParseNodeLogLevel(s string) (NodeLogLevel, error) {
	switch level := NodeLogLevel(strings.ToLower(s)); level {
	case NodeLogTrace, NodeLogVerbose, NodeLogDebug, NodeLogInfo, NodeLogWarn, NodeLogError, NodeLogAssert:
		return level, nil
	default:
		return "", &EnumError{Enum: "NodeLogLevel", Value: s}
	}
}

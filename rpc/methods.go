package rpc

// Method describes how an operation is encoded on the wire. The last
// Optional of its Params may be left unset.
type Method struct {
	Name     string
	Params   int
	Optional int
}

func (m Method) String() string {
	return m.Name
}

var (
	PeerCount = Method{Name: "peerCount"}
	Syncing   = Method{Name: "syncing"}
	Consensus = Method{Name: "consensus"}
	PeerList  = Method{Name: "peerList"}
	PeerState = Method{Name: "peerState", Params: 2, Optional: 1}

	SendRawTransaction                  = Method{Name: "sendRawTransaction", Params: 1}
	CreateRawTransaction                = Method{Name: "createRawTransaction", Params: 1}
	SendTransaction                     = Method{Name: "sendTransaction", Params: 1}
	GetRawTransactionInfo               = Method{Name: "getRawTransactionInfo", Params: 1}
	GetTransactionByBlockHashAndIndex   = Method{Name: "getTransactionByBlockHashAndIndex", Params: 2}
	GetTransactionByBlockNumberAndIndex = Method{Name: "getTransactionByBlockNumberAndIndex", Params: 2}
	GetTransactionByHash                = Method{Name: "getTransactionByHash", Params: 1}
	GetTransactionReceipt               = Method{Name: "getTransactionReceipt", Params: 1}
	GetTransactionsByAddress            = Method{Name: "getTransactionsByAddress", Params: 2, Optional: 1}

	MempoolContent = Method{Name: "mempoolContent", Params: 1, Optional: 1}
	Mempool        = Method{Name: "mempool"}
	MinFeePerByte  = Method{Name: "minFeePerByte", Params: 1, Optional: 1}

	Mining               = Method{Name: "mining", Params: 1, Optional: 1}
	Hashrate             = Method{Name: "hashrate"}
	MinerThreads         = Method{Name: "minerThreads", Params: 1, Optional: 1}
	MinerAddress         = Method{Name: "minerAddress"}
	Pool                 = Method{Name: "pool", Params: 1, Optional: 1}
	PoolConnectionState  = Method{Name: "poolConnectionState"}
	PoolConfirmedBalance = Method{Name: "poolConfirmedBalance"}
	GetWork              = Method{Name: "getWork", Params: 2, Optional: 2}
	GetBlockTemplate     = Method{Name: "getBlockTemplate", Params: 2, Optional: 2}
	SubmitBlock          = Method{Name: "submitBlock", Params: 1}

	Accounts      = Method{Name: "accounts"}
	CreateAccount = Method{Name: "createAccount"}
	GetBalance    = Method{Name: "getBalance", Params: 1}
	GetAccount    = Method{Name: "getAccount", Params: 1}

	BlockNumber                      = Method{Name: "blockNumber"}
	GetBlockTransactionCountByHash   = Method{Name: "getBlockTransactionCountByHash", Params: 1}
	GetBlockTransactionCountByNumber = Method{Name: "getBlockTransactionCountByNumber", Params: 1}
	GetBlockByHash                   = Method{Name: "getBlockByHash", Params: 2, Optional: 1}
	GetBlockByNumber                 = Method{Name: "getBlockByNumber", Params: 2, Optional: 1}

	Constant = Method{Name: "constant", Params: 2, Optional: 1}
	Log      = Method{Name: "log", Params: 2}
)

// Methods indexes every known method by wire name.
var Methods = indexMethods(
	PeerCount, Syncing, Consensus, PeerList, PeerState,
	SendRawTransaction, CreateRawTransaction, SendTransaction, GetRawTransactionInfo,
	GetTransactionByBlockHashAndIndex, GetTransactionByBlockNumberAndIndex,
	GetTransactionByHash, GetTransactionReceipt, GetTransactionsByAddress,
	MempoolContent, Mempool, MinFeePerByte,
	Mining, Hashrate, MinerThreads, MinerAddress, Pool, PoolConnectionState,
	PoolConfirmedBalance, GetWork, GetBlockTemplate, SubmitBlock,
	Accounts, CreateAccount, GetBalance, GetAccount,
	BlockNumber, GetBlockTransactionCountByHash, GetBlockTransactionCountByNumber,
	GetBlockByHash, GetBlockByNumber,
	Constant, Log,
)

func indexMethods(methods ...Method) map[string]Method {
	idx := make(map[string]Method, len(methods))
	for _, m := range methods {
		idx[m.Name] = m
	}
	return idx
}

package integration_tests

const (
	simnetLnd1PubKey = "0242898f86064c2fd72de22059c947a83ba23e9d97aedeae7b6dba647123f1d71b"
	simnetLnd2PubKey = "025c1d5d1b4c983cc6350fc2d756fbb59b4dc365e45e87f8e3afe07e24013e8220"
	simnetLnd3PubKey = "03c7092d076f799ab18806743634b4c9bb34e351bdebc91d5b35963f3dc63ec5aa"
)

const getInfoResponse = `{
	"version": "0.17.3-beta commit=v0.17.3-beta",
	"identity_pubkey": "0242898f86064c2fd72de22059c947a83ba23e9d97aedeae7b6dba647123f1d71b",
	"alias": "alby-simnet-lnd1",
	"num_active_channels": 1,
	"num_peers": 1,
	"block_height": 812345,
	"synced_to_chain": true,
	"uris": ["0242898f86064c2fd72de22059c947a83ba23e9d97aedeae7b6dba647123f1d71b@lnd1.simnet:9735"]
}`

const listChannelsResponse = `{
	"channels": [{
		"active": true,
		"remote_pubkey": "025c1d5d1b4c983cc6350fc2d756fbb59b4dc365e45e87f8e3afe07e24013e8220",
		"channel_point": "a3c1a3e7e4f44a5f6bd79d1c5cbe3f8a1ae3c2b1d0e9f8a7b6c5d4e3f2a1b0c9:0",
		"chan_id": "893200838844497920",
		"capacity": "1000000",
		"local_balance": "150000",
		"remote_balance": "846530"
	}]
}`

const addInvoiceResponse = `{
	"r_hash": "m7oHv1XMzNaVZFZkF8G5Kbz2KdzBOD6vbjWD6LYW1Zs=",
	"payment_request": "lnsb1u1pjmqvjypp5nwaq006hnnxdd9ty2ejp0sde9x70v2wuhzqrata6mxkr6pdkzkdsdqqcqzzsxqyz5vqsp5hqkh4f5vk0uumqk6a3gtruvnehwc9easpecwdla2wmlzvm6jqcq9qyyssq7p8jhr6n8q5ts4vlm3a3zlchnpp4nz6xjzv7q0e3q9ua7vvgaxrn0k6l3dxc3z9z6q6tdl0r3lxl8npqnh8c6uh6h6yx6ka3hhp3qqffkmvq",
	"add_index": "12"
}`

type ExpectedAddInvoiceRequestBody struct {
	Amount int64  `json:"amt"`
	Memo   string `json:"memo"`
	QR     bool   `json:"qr,omitempty"`
}

type ExpectedAddInvoiceResponseBody struct {
	PaymentRequest string `json:"payment_request"`
	RHash          string `json:"r_hash"`
	Amount         int64  `json:"amount"`
	Memo           string `json:"memo"`
	QR             string `json:"qr"`
}

type ExpectedStatusResponseBody struct {
	Status       string `json:"status"`
	Online       bool   `json:"online"`
	Reachability string `json:"reachability"`
	Endpoint     string `json:"endpoint"`
}

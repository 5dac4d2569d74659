/*
Package server implements msgpack IPC for text masking services.

The server reads binary msgpack messages from stdin and writes responses to
stdout, which makes it embeddable behind editors, chat gateways or any other
process that pipes text through it. Requests are processed synchronously;
responses carry microsecond timing so clients can watch throughput.

# IPC

Each message carries an ID the response echoes back. Masking requests send
the text and an optional replacement character:

	{"id": "req_001", "t": "a badword here", "r": "*"}

The server answers with the masked text and the number of masked spans:

	{"id": "req_001", "t": "a ******* here", "m": 1, "tt": 38}

Dictionary requests carry an action instead of text. Supported actions are
"get_info" (loading counters and table size), "add_words" (feed additional
words into the running filter) and "lookup" (prefix query over the accepted
words):

	{"id": "dict_001", "action": "add_words", "words": ["foo-bar"]}
	{"id": "dict_002", "action": "lookup", "p": "foo", "l": 10}

Malformed or unknown messages produce an error response with the offending
ID when one was readable:

	{"id": "req_002", "e": "missing 't' parameter", "c": 400}
*/
package server

// Request is the single incoming message shape. Action distinguishes
// dictionary management from masking: empty means mask.
type Request struct {
	ID      string   `msgpack:"id"`
	Text    string   `msgpack:"t,omitempty"`
	Replace string   `msgpack:"r,omitempty"`
	Action  string   `msgpack:"action,omitempty"`
	Words   []string `msgpack:"words,omitempty"`
	Prefix  string   `msgpack:"p,omitempty"`
	Limit   int      `msgpack:"l,omitempty"`
}

// MaskResponse answers a masking request.
type MaskResponse struct {
	ID        string `msgpack:"id"`
	Text      string `msgpack:"t"`
	Matched   int    `msgpack:"m"`
	TimeTaken int64  `msgpack:"tt"` // microseconds
}

// DictResponse answers a dictionary management request.
type DictResponse struct {
	ID        string   `msgpack:"id"`
	Status    string   `msgpack:"status"`
	Accepted  int      `msgpack:"accepted,omitempty"`
	Skipped   int      `msgpack:"skipped,omitempty"`
	Words     []string `msgpack:"words,omitempty"`
	WordCount int      `msgpack:"word_count,omitempty"`
	TableSize int      `msgpack:"table_size,omitempty"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

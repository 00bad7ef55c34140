package models

import (
	"encoding/base64"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackOutcomeResponse is the API payload when the client asks for msgpack.
// Only the outcome is msgpack encoded; the envelope stays plain JSON.
// Clients signal this mode with the X-Body-Encoding: msgpack header.
type MsgPackOutcomeResponse struct {
	QueryID        string `json:"query_id"`
	OutcomeEncoded string `json:"outcome_encoded"` // Base64-encoded msgpack bytes
}

// EncodeMsgPackOutcome encodes an outcome to Base64-encoded msgpack bytes.
//
// Encoding pipeline: SearchOutcome -> msgpack bytes -> Base64 string
func EncodeMsgPackOutcome(o SearchOutcome) (string, error) {
	msgpackBytes, err := msgpack.Marshal(o)
	if err != nil {
		return "", serr.Wrap(err, "failed to msgpack encode outcome")
	}

	// Standard encoding (not URL-safe) since this travels in a JSON body
	return base64.StdEncoding.EncodeToString(msgpackBytes), nil
}

// DecodeMsgPackOutcome reverses EncodeMsgPackOutcome
func DecodeMsgPackOutcome(encoded string) (SearchOutcome, error) {
	var o SearchOutcome
	if encoded == "" {
		return o, serr.New("empty msgpack outcome")
	}

	msgpackBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return o, serr.Wrap(err, "failed to decode base64 outcome")
	}

	if err := msgpack.Unmarshal(msgpackBytes, &o); err != nil {
		return o, serr.Wrap(err, "failed to unmarshal msgpack outcome")
	}

	return o, nil
}

// ToMsgPackResponse wraps the outcome for the msgpack response mode
func (o SearchOutcome) ToMsgPackResponse() (*MsgPackOutcomeResponse, error) {
	encoded, err := EncodeMsgPackOutcome(o)
	if err != nil {
		return nil, err
	}
	return &MsgPackOutcomeResponse{QueryID: o.QueryID, OutcomeEncoded: encoded}, nil
}

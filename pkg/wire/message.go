package wire

import (
	"fmt"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// ReservedMessageID may not be used by requests.
const ReservedMessageID uint32 = 0

// Request asks a server to get or set one property.
//
// CBOR encoding:
//
//	{
//	  1: messageId,  // uint32
//	  2: operation,  // uint8: 1=Get, 2=Set
//	  3: unit,       // uint8: 1=rx, 2=tx
//	  4: subdev,     // string
//	  5: key,        // uint8 prop.Key
//	  6: value       // prop.Value, Set only
//	}
type Request struct {
	MessageID uint32      `cbor:"1,keyasint"`
	Operation Operation   `cbor:"2,keyasint"`
	Unit      dboard.Unit `cbor:"3,keyasint"`
	Subdev    string      `cbor:"4,keyasint"`
	Key       prop.Key    `cbor:"5,keyasint"`
	Value     *prop.Value `cbor:"6,keyasint,omitempty"`
}

// Validate checks the request envelope. It does not check whether the key
// is part of the enumeration; that is the board's answer to give.
func (r *Request) Validate() error {
	if r.MessageID == ReservedMessageID {
		return fmt.Errorf("%w: messageId 0 is reserved", ErrBadRequest)
	}
	if !r.Operation.IsValid() {
		return fmt.Errorf("%w: invalid operation %d", ErrBadRequest, r.Operation)
	}
	if !r.Unit.IsValid() {
		return fmt.Errorf("%w: invalid unit %d", ErrBadRequest, r.Unit)
	}
	switch r.Operation {
	case OpGet:
		if r.Value != nil {
			return fmt.Errorf("%w: get carries a value", ErrBadRequest)
		}
	case OpSet:
		if r.Value == nil || !r.Value.IsValid() {
			return fmt.Errorf("%w: set without a value", ErrBadRequest)
		}
		if err := prop.CheckKind(r.Key, *r.Value); err != nil {
			return fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
	}
	return nil
}

// Response answers a request.
//
// CBOR encoding:
//
//	{
//	  1: messageId,  // uint32: matches request
//	  2: status,     // uint8
//	  3: value,      // prop.Value, successful Get only
//	  4: message     // error text, failures only
//	}
type Response struct {
	MessageID uint32      `cbor:"1,keyasint"`
	Status    Status      `cbor:"2,keyasint"`
	Value     *prop.Value `cbor:"3,keyasint,omitempty"`
	Message   string      `cbor:"4,keyasint,omitempty"`
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// Err returns the error carried by the response, or nil on success.
func (r *Response) Err() error {
	return r.Status.Err(r.Message)
}

// NewGetRequest builds a Get request.
func NewGetRequest(id uint32, unit dboard.Unit, subdev string, key prop.Key) *Request {
	return &Request{MessageID: id, Operation: OpGet, Unit: unit, Subdev: subdev, Key: key}
}

// NewSetRequest builds a Set request.
func NewSetRequest(id uint32, unit dboard.Unit, subdev string, key prop.Key, val prop.Value) *Request {
	return &Request{MessageID: id, Operation: OpSet, Unit: unit, Subdev: subdev, Key: key, Value: &val}
}

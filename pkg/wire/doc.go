// Package wire defines the CBOR wire format for remote property access.
//
// A host process that owns the daughterboard managers can serve Get and Set
// requests from other processes. Every message is a CBOR map with integer
// keys.
//
// # Messages
//
//	Request  {1: messageId, 2: op, 3: unit, 4: subdev, 5: key, 6: value}
//	Response {1: messageId, 2: status, 3: value, 4: message}
//
// MessageID 0 is reserved. Values use the prop.Value CBOR form
// ({1: kind, 2..6: payload}).
//
// # Status
//
// Responses carry a Status that mirrors the property error taxonomy, so a
// client can rebuild an error that matches the server's sentinel with
// errors.Is.
package wire

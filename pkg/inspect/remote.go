package inspect

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
	"github.com/sdrhost/dboard-go/pkg/wire"
)

// Transport carries one encoded wire.Request to a slot and returns the
// encoded wire.Response.
type Transport interface {
	RoundTrip(ctx context.Context, req []byte) ([]byte, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req []byte) ([]byte, error)

// RoundTrip calls f.
func (f TransportFunc) RoundTrip(ctx context.Context, req []byte) ([]byte, error) {
	return f(ctx, req)
}

// Loopback returns a Transport that serves requests in-process with h.
func Loopback(h wire.Handler) Transport {
	return TransportFunc(func(ctx context.Context, req []byte) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return wire.Serve(h, req)
	})
}

// RemoteInspector reads and writes properties of a slot reached through
// the wire codec.
type RemoteInspector struct {
	transport Transport
	nextID    atomic.Uint32
}

// NewRemoteInspector creates a new remote inspector for the given transport.
func NewRemoteInspector(transport Transport) *RemoteInspector {
	return &RemoteInspector{transport: transport}
}

func (r *RemoteInspector) messageID() uint32 {
	for {
		if id := r.nextID.Add(1); id != wire.ReservedMessageID {
			return id
		}
	}
}

func (r *RemoteInspector) roundTrip(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	data, err := wire.EncodeRequest(req)
	if err != nil {
		return nil, err
	}
	respData, err := r.transport.RoundTrip(ctx, data)
	if err != nil {
		return nil, err
	}
	resp, err := wire.DecodeResponse(respData)
	if err != nil {
		return nil, err
	}
	if resp.MessageID != req.MessageID {
		return nil, fmt.Errorf("response id %d does not match request id %d", resp.MessageID, req.MessageID)
	}
	return resp, nil
}

// ReadProperty reads a single property from the remote slot.
func (r *RemoteInspector) ReadProperty(ctx context.Context, path *Path) (prop.Value, error) {
	if path == nil {
		return prop.Value{}, errors.New("path is nil")
	}
	if path.IsPartial {
		return prop.Value{}, fmt.Errorf("%w: use ReadSubdev for sub-device reads", ErrPartialPath)
	}
	return r.Get(ctx, path.Unit, path.Subdev, path.Key)
}

// Get reads one property.
func (r *RemoteInspector) Get(ctx context.Context, unit dboard.Unit, subdev string, key prop.Key) (prop.Value, error) {
	resp, err := r.roundTrip(ctx, wire.NewGetRequest(r.messageID(), unit, subdev, key))
	if err != nil {
		return prop.Value{}, err
	}
	if err := resp.Err(); err != nil {
		return prop.Value{}, err
	}
	if resp.Value == nil {
		return prop.Value{}, errors.New("value not found in response")
	}
	return *resp.Value, nil
}

// ReadSubdev reads every property of a sub-device. Keys the board rejects
// are left out.
func (r *RemoteInspector) ReadSubdev(ctx context.Context, unit dboard.Unit, subdev string) (map[prop.Key]prop.Value, error) {
	out := make(map[prop.Key]prop.Value)
	for _, key := range prop.Keys() {
		val, err := r.Get(ctx, unit, subdev, key)
		if errors.Is(err, dboard.ErrUnknownSubdev) {
			return nil, err
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		out[key] = val
	}
	return out, nil
}

// WriteProperty writes a single property on the remote slot.
func (r *RemoteInspector) WriteProperty(ctx context.Context, path *Path, value prop.Value) error {
	if path == nil {
		return errors.New("path is nil")
	}
	if path.IsPartial {
		return fmt.Errorf("%w: cannot write to partial path", ErrPartialPath)
	}

	resp, err := r.roundTrip(ctx, wire.NewSetRequest(r.messageID(), path.Unit, path.Subdev, path.Key, value))
	if err != nil {
		return err
	}
	return resp.Err()
}

package wire

import (
	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/prop"
)

// Handler serves property operations for one slot.
type Handler interface {
	Get(unit dboard.Unit, subdev string, key prop.Key) (prop.Value, error)
	Set(unit dboard.Unit, subdev string, key prop.Key, val prop.Value) error
}

// Dispatch validates req, runs it against h and builds the response.
func Dispatch(h Handler, req *Request) *Response {
	resp := &Response{MessageID: req.MessageID}

	if err := req.Validate(); err != nil {
		resp.Status = StatusBadRequest
		resp.Message = err.Error()
		return resp
	}

	switch req.Operation {
	case OpGet:
		val, err := h.Get(req.Unit, req.Subdev, req.Key)
		if err != nil {
			resp.Status = StatusFromError(err)
			resp.Message = err.Error()
			return resp
		}
		resp.Value = &val

	case OpSet:
		if err := h.Set(req.Unit, req.Subdev, req.Key, *req.Value); err != nil {
			resp.Status = StatusFromError(err)
			resp.Message = err.Error()
			return resp
		}
	}

	resp.Status = StatusSuccess
	return resp
}

// Serve decodes one request, dispatches it and encodes the response. A
// request that cannot be decoded is answered with StatusBadRequest and
// messageId 0.
func Serve(h Handler, data []byte) ([]byte, error) {
	req, err := DecodeRequest(data)
	if err != nil {
		var id uint32
		if req != nil {
			id = req.MessageID
		}
		return EncodeResponse(&Response{MessageID: id, Status: StatusBadRequest, Message: err.Error()})
	}
	return EncodeResponse(Dispatch(h, req))
}

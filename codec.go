package canmsg

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// message always produces identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("canmsg: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("canmsg: CBOR decoder initialization failed: " + err.Error())
	}
}

// wireMessage is the CBOR shape of a Message.
type wireMessage struct {
	ID       uint32 `cbor:"id"`
	Extended bool   `cbor:"ext"`
	Data     []byte `cbor:"data"`
}

// MarshalCBOR implements cbor.Marshaler.
func (m Message) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(wireMessage{
		ID:       m.id.Widen(),
		Extended: m.id.IsExtended(),
		Data:     m.data[:m.length],
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded message is
// validated as by New.
func (m *Message) UnmarshalCBOR(data []byte) error {
	var w wireMessage
	if err := decMode.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("canmsg: decode: %w", err)
	}
	if len(w.Data) > MaxDataLen {
		return ErrDataLength
	}
	var id ID
	switch {
	case w.Extended:
		id = ExtendedID(w.ID)
	case w.ID > 0xFFFF:
		return ErrIDLength
	default:
		id = ShortID(uint16(w.ID))
	}
	decoded, err := New(id, w.Data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// Encoder writes messages as a CBOR sequence.
type Encoder struct {
	enc *cbor.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: encMode.NewEncoder(w)}
}

// Encode writes one message.
func (e *Encoder) Encode(m Message) error {
	return e.enc.Encode(m)
}

// Decoder reads messages from a CBOR sequence.
type Decoder struct {
	dec *cbor.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: decMode.NewDecoder(r)}
}

// Decode reads the next message. It returns io.EOF at the end of the
// stream.
func (d *Decoder) Decode() (Message, error) {
	var m Message
	if err := d.dec.Decode(&m); err != nil {
		return Message{}, err
	}
	return m, nil
}

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fxamacker/cbor/v2"
)

// ContentTypeCBOR identifies the wire format of every successful body.
// Clients must reject responses whose Content-Type differs.
const ContentTypeCBOR = "application/cbor"

// maxBodySize bounds decoded response bodies (1MB).
const maxBodySize = 1024 * 1024

// ErrInvalidContentType is returned when a response is not tagged as CBOR.
var ErrInvalidContentType = errors.New("invalid content type")

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	encOpts := cbor.CoreDetEncOptions()
	encOpts.NilContainers = cbor.NilContainerAsEmpty

	var err error
	if encMode, err = encOpts.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{}).DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes v in the wire format.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes a wire-format body into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// WriteCBOR encodes v and writes it with the given status and the CBOR content type.
// Nothing is written if encoding fails.
func WriteCBOR(w http.ResponseWriter, status int, v any) error {
	body, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode response: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeCBOR)
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// CheckContentType verifies the response carries exactly the CBOR content type.
func CheckContentType(resp *http.Response) error {
	if got := resp.Header.Get("Content-Type"); got != ContentTypeCBOR {
		return fmt.Errorf("%w: %q", ErrInvalidContentType, got)
	}
	return nil
}

// DecodeCBOR checks the content type of resp and decodes its body into v.
// The body is not read if the content type does not match.
func DecodeCBOR(resp *http.Response, v any) error {
	if err := CheckContentType(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}

	if err := Unmarshal(body, v); err != nil {
		return fmt.Errorf("could not parse response: %w", err)
	}
	return nil
}

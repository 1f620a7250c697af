package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DecodePayload reads a single JSON object from the request body into object.
// Unknown fields are rejected.
func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err == io.EOF {
		return fmt.Errorf("decoding json payload: request body is empty")
	}
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

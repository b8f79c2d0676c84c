package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// Helper functions for SSE formatting

// WriteSSEEvent writes one named server-sent event with a JSON payload
func WriteSSEEvent(w io.Writer, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}

// WriteSSEComment writes a comment line, used as the connection preamble
func WriteSSEComment(w io.Writer, comment string) {
	fmt.Fprintf(w, ": %s\n\n", comment)
}

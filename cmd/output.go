package cmd

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var jsonOptions = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

// writeJSON writes a JSON object built from m, which must contain only types accepted by structpb.
func writeJSON(w io.Writer, m map[string]interface{}) error {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return fmt.Errorf("unable to convert result to json: %w", err)
	}
	b, err := jsonOptions.Marshal(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

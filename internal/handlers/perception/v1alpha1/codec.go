package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
)

// EncodeStruct converts any JSON serializable value into a wire struct
func EncodeStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	s := &structpb.Struct{}
	if err := s.UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return s, nil
}

// DecodeStruct fills v from a wire struct
func DecodeStruct(s *structpb.Struct, v interface{}) error {
	if s == nil {
		return errors.InvalidArgument("request is required")
	}

	raw, err := s.MarshalJSON()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

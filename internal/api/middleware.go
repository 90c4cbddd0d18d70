package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// EnvelopeVersion identifies the response envelope layout. Bump it only
// when the envelope shape itself changes, never for payload changes.
const EnvelopeVersion = 1

// APIEnvelope wraps every JSON body the API returns. Success responses
// carry Data; simple failures carry Error.
type APIEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIErrorEnvelope wraps coded errors that carry structured details,
// such as per-field validation messages.
type APIErrorEnvelope struct { //nolint:revive
	Version int    `json:"v"`
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps huma response bodies in the API envelope.
// Registered as a huma transformer so handlers return bare payloads.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		if apiErr.Code != "" || apiErr.Details != nil {
			return APIErrorEnvelope{
				Version: EnvelopeVersion,
				Success: false,
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			}, nil
		}
		return APIEnvelope{
			Version: EnvelopeVersion,
			Success: false,
			Error:   apiErr.Message,
		}, nil
	}

	if err, ok := v.(error); ok {
		return APIEnvelope{
			Version: EnvelopeVersion,
			Success: false,
			Error:   err.Error(),
		}, nil
	}

	success := len(status) == 0 || status[0] < '4'
	return APIEnvelope{
		Version: EnvelopeVersion,
		Success: success,
		Data:    v,
	}, nil
}

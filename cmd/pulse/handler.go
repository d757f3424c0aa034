// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cast"
	"github.com/xmidt-org/pulse"
	"github.com/xmidt-org/pulse/logging"
	"go.uber.org/zap"
)

const durationParameter = "duration"

type pulseResponse struct {
	Duration string `json:"duration"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Phase    string `json:"phase,omitempty"`
	Dangling bool   `json:"dangling"`
}

// pulseHandler emits one pulse per request on a shared target.  The duration query parameter
// accepts anything cast understands as a duration, e.g. 250ms or 1s.  A bare number is nanoseconds.
type pulseHandler struct {
	emitter  pulse.Interface
	target   pulse.Sender
	duration time.Duration
}

func (ph *pulseHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	d := ph.duration
	if raw := request.URL.Query().Get(durationParameter); len(raw) > 0 {
		var err error
		if d, err = cast.ToDurationE(raw); err != nil {
			logging.Get(request.Context()).Debug("invalid duration", zap.String(durationParameter, raw), zap.Error(err))
			writeJSON(response, request, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	if err := ph.emitter.Emit(request.Context(), ph.target, d); err != nil {
		writeError(response, request, err)
		return
	}

	writeJSON(response, request, http.StatusOK, pulseResponse{Duration: d.String()})
}

// statusCode maps an emitter error onto the HTTP status reported to the client
func statusCode(err error) int {
	var (
		ie *pulse.InterruptedError
		se *pulse.SendError
	)

	switch {
	case errors.Is(err, pulse.ErrNegativeDuration):
		return http.StatusBadRequest
	case errors.As(err, &ie):
		return http.StatusConflict
	case errors.As(err, &se):
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

func writeError(response http.ResponseWriter, request *http.Request, err error) {
	body := errorResponse{
		Error:    err.Error(),
		Dangling: pulse.Dangling(err),
	}

	var se *pulse.SendError
	if errors.As(err, &se) {
		body.Phase = se.Phase.String()
	}

	writeJSON(response, request, statusCode(err), body)
}

func writeJSON(response http.ResponseWriter, request *http.Request, code int, body interface{}) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)
	if err := json.NewEncoder(response).Encode(body); err != nil {
		logging.Get(request.Context()).Error("unable to write response body", zap.Int("code", code), zap.Error(err))
	}
}

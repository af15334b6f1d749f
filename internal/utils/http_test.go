// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"cid": "QmTestCID"}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"cid":"QmTestCID"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteMessage(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		status int
		want   string
	}{
		{name: "bad request", msg: "Missing file", status: http.StatusBadRequest, want: `{"message":"Missing file"}`},
		{name: "bad gateway", msg: "CID not found in Pinata response", status: http.StatusBadGateway, want: `{"message":"CID not found in Pinata response"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteMessage(w, tt.msg, tt.status)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if w.Body.String() != tt.want {
				t.Errorf("expected body %s, got %s", tt.want, w.Body.String())
			}
		})
	}
}

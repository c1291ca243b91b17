package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailWorkerDropsUnretryablePayloads(t *testing.T) {
	w := NewEmailWorker(nil)

	// Malformed JSON can never succeed on retry.
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{not json`)))

	// Missing recipient likewise.
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{"subject":"hi","body":"x"}`)))
}

func TestJobEnvelopeRoundTrip(t *testing.T) {
	payload, err := json.Marshal(EmailJobPayload{ToEmail: "a@b.c", Subject: "s", Body: "b"})
	assert.NoError(t, err)

	job := Job{Type: "email", Payload: payload, Attempts: 1}
	encoded, err := json.Marshal(job)
	assert.NoError(t, err)

	var decoded Job
	assert.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "email", decoded.Type)
	assert.Equal(t, 1, decoded.Attempts)

	var p EmailJobPayload
	assert.NoError(t, json.Unmarshal(decoded.Payload, &p))
	assert.Equal(t, "a@b.c", p.ToEmail)
}

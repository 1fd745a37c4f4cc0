package pkg

import (
	"encoding/json"
	"testing"
	"time"

	"jobhunter"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTestNats(t *testing.T) *server.Server {
	t.Helper()
	ns, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: server.RANDOM_PORT, NoLog: true, NoSigs: true})
	require.NoError(t, err)
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		t.Fatal("nats server did not start")
	}
	t.Cleanup(ns.Shutdown)
	return ns
}

func TestPublishActivity(t *testing.T) {
	ns := runTestNats(t)

	publisher, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(publisher.Close)
	subscriber, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(subscriber.Close)

	sub, err := subscriber.SubscribeSync("user.*.activity")
	require.NoError(t, err)
	require.NoError(t, subscriber.Flush())

	previous := jobhunter.Nats
	jobhunter.Nats = publisher
	t.Cleanup(func() { jobhunter.Nats = previous })

	before := time.Now().UTC()
	PublishActivity("user-42", ActivityEmailSent, map[string]string{"emailId": "e1"})
	require.NoError(t, publisher.Flush())

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "user.user-42.activity", msg.Subject)
	assert.Equal(t, ActivitySubject("user-42"), msg.Subject)

	var envelope struct {
		Type    string            `json:"type"`
		At      time.Time         `json:"at"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &envelope))
	assert.Equal(t, "email.sent", envelope.Type)
	assert.Equal(t, map[string]string{"emailId": "e1"}, envelope.Payload)
	assert.False(t, envelope.At.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, envelope.At.Location())
}

func TestPublishActivity_NoConnectionIsNoop(t *testing.T) {
	previous := jobhunter.Nats
	jobhunter.Nats = nil
	t.Cleanup(func() { jobhunter.Nats = previous })

	assert.NotPanics(t, func() {
		PublishActivity("user-42", ActivityStatusChanged, nil)
	})
}

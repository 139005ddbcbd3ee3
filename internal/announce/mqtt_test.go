package announce

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"spinwheel/internal/config"
	"spinwheel/internal/spin"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mu           sync.Mutex
	connectErr   error
	publishErr   error
	published    []published
	disconnected bool
}

func (c *fakeClient) Connect() paho.Token { return &fakeToken{err: c.connectErr} }

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload any) paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: c.publishErr}
}

var enabledCfg = config.MQTT{Host: "broker.local", Port: 1883, Topic: "lunch/winner", ClientID: "test"}

func sampleWinner() spin.Winner {
	return spin.Winner{
		Seq:        3,
		Label:      "Sushi",
		SpinID:     uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		ResolvedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestMQTT_Disabled(t *testing.T) {
	client := &fakeClient{}
	m := New(config.MQTT{}, withClient(client))

	assert.False(t, m.Enabled())
	require.NoError(t, m.Connect())
	m.Announce(sampleWinner())
	m.Close()

	assert.Empty(t, client.published)
	assert.False(t, client.disconnected)
}

func TestMQTT_AnnouncePublishesJSON(t *testing.T) {
	client := &fakeClient{}
	m := New(enabledCfg, withClient(client))

	require.True(t, m.Enabled())
	require.NoError(t, m.Connect())
	m.Announce(sampleWinner())

	client.mu.Lock()
	require.Len(t, client.published, 1)
	msg := client.published[0]
	client.mu.Unlock()

	assert.Equal(t, "lunch/winner", msg.topic)
	assert.Equal(t, byte(1), msg.qos)

	var ev Event
	require.NoError(t, json.Unmarshal(msg.payload, &ev))
	assert.Equal(t, 3, ev.Seq)
	assert.Equal(t, "Sushi", ev.Label)
	assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", ev.SpinID)
	assert.True(t, ev.ResolvedAt.Equal(sampleWinner().ResolvedAt))

	m.Close()
	assert.True(t, client.disconnected)
}

func TestMQTT_ConnectError(t *testing.T) {
	client := &fakeClient{connectErr: errors.New("refused")}
	m := New(enabledCfg, withClient(client))

	err := m.Connect()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect mqtt: refused")
}

func TestMQTT_PublishErrorReported(t *testing.T) {
	client := &fakeClient{publishErr: errors.New("broker gone")}
	errs := make(chan error, 1)
	m := New(enabledCfg, withClient(client), WithErrorHandler(func(err error) { errs <- err }))

	m.Announce(sampleWinner())

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "publish lunch/winner: broker gone")
	case <-time.After(time.Second):
		t.Fatal("publish error was not reported")
	}
}

func TestNew_BuildsPahoClient(t *testing.T) {
	m := New(enabledCfg)

	assert.True(t, m.Enabled())
	assert.NotNil(t, m.client)
}

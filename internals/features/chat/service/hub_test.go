package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvWithin(t *testing.T, c *Client, d time.Duration) []byte {
	t.Helper()
	select {
	case payload := <-c.Send():
		return payload
	case <-time.After(d):
		t.Fatal("không nhận được frame trong thời gian chờ")
		return nil
	}
}

func assertNoFrame(t *testing.T, c *Client, d time.Duration) {
	t.Helper()
	select {
	case payload := <-c.Send():
		t.Fatalf("không mong frame nào nhưng nhận: %s", payload)
	case <-time.After(d):
	}
}

func TestHubBroadcastInOrder(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Stop()

	a := NewClient(nil, "u1")
	b := NewClient(nil, "u2")
	h.Join(a, "conv1")
	h.Join(b, "conv1")

	h.Broadcast("conv1", []byte("m1"))
	h.Broadcast("conv1", []byte("m2"))
	h.Broadcast("conv1", []byte("m3"))

	for _, c := range []*Client{a, b} {
		assert.Equal(t, "m1", string(recvWithin(t, c, time.Second)))
		assert.Equal(t, "m2", string(recvWithin(t, c, time.Second)))
		assert.Equal(t, "m3", string(recvWithin(t, c, time.Second)))
	}
}

func TestHubJoinLeavesPreviousConversation(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Stop()

	a := NewClient(nil, "u1")
	h.Join(a, "conv1")
	h.Join(a, "conv2")

	// đã rời conv1 nên frame của conv1 không tới nữa
	h.Broadcast("conv1", []byte("cu"))
	assertNoFrame(t, a, 100*time.Millisecond)

	h.Broadcast("conv2", []byte("moi"))
	assert.Equal(t, "moi", string(recvWithin(t, a, time.Second)))
}

func TestHubDeliverOnlyTargetClient(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Stop()

	a := NewClient(nil, "u1")
	b := NewClient(nil, "u2")
	h.Join(a, "conv1")
	h.Join(b, "conv1")

	h.Deliver(a, []byte("rieng"))

	assert.Equal(t, "rieng", string(recvWithin(t, a, time.Second)))
	assertNoFrame(t, b, 100*time.Millisecond)
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Stop()

	a := NewClient(nil, "u1")
	h.Join(a, "conv1")
	h.Unregister(a)

	// kênh ghi phải đóng để write pump thoát
	select {
	case _, open := <-a.Send():
		require.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("kênh ghi không đóng sau khi unregister")
	}

	// broadcast sau khi rời không panic, không giao frame
	h.Broadcast("conv1", []byte("muon"))
	time.Sleep(50 * time.Millisecond)
}

package game

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func benchmarkSnapshotBroadcast(b *testing.B, subscribers int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	nop := zerolog.Nop()
	c := New(NewMemoryStore(), &nop)
	go c.Run(ctx)

	room, err := c.CreateRoom(ctx, Candidate{ID: "h1", Name: "Host", Color: "#ef4444", Ready: false})
	if err != nil {
		b.Fatalf("create: %v", err)
	}

	target := NewSubscriber("target")
	c.Subscribe(target)

	// Drain events for all but the measured subscriber to avoid
	// channel backpressure.
	for i := 1; i < subscribers; i++ {
		sub := NewSubscriber("s" + strconv.Itoa(i))
		c.Subscribe(sub)
		go func(s *Subscriber) {
			for range s.Events {
			}
		}(sub)
	}

	update := Candidate{ID: "h1", Name: "Host", Color: "#ef4444", Ready: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.UpdatePlayer(ctx, room.Code, update); err != nil {
			b.Fatalf("update: %v", err)
		}
		<-target.Events
	}
}

func BenchmarkSnapshotBroadcast_10(b *testing.B)  { benchmarkSnapshotBroadcast(b, 10) }
func BenchmarkSnapshotBroadcast_100(b *testing.B) { benchmarkSnapshotBroadcast(b, 100) }
func BenchmarkSnapshotBroadcast_500(b *testing.B) { benchmarkSnapshotBroadcast(b, 500) }

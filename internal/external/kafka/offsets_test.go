package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type committed struct {
	offsets map[int][]int64
	err     error
}

func (c *committed) commit(ctx context.Context, msg kafka.Message) error {
	if c.err != nil {
		return c.err
	}
	c.offsets[msg.Partition] = append(c.offsets[msg.Partition], msg.Offset)
	return nil
}

func message(partition int, offset int64) kafka.Message {
	return kafka.Message{Topic: "completions", Partition: partition, Offset: offset}
}

func TestOffsetTrackerOutOfOrder(t *testing.T) {
	ctx := context.Background()
	c := &committed{offsets: make(map[int][]int64)}
	tracker := NewOffsetTracker(c.commit)
	for _, offset := range []int64{10, 11, 12} {
		tracker.Track(message(0, offset))
	}

	// 10 еще обрабатывается, 11 не коммитится
	require.NoError(t, tracker.Done(ctx, message(0, 11)))
	require.Empty(t, c.offsets[0])

	require.NoError(t, tracker.Done(ctx, message(0, 10)))
	require.Equal(t, []int64{11}, c.offsets[0])

	require.NoError(t, tracker.Done(ctx, message(0, 12)))
	require.Equal(t, []int64{11, 12}, c.offsets[0])
}

func TestOffsetTrackerPartitions(t *testing.T) {
	ctx := context.Background()
	c := &committed{offsets: make(map[int][]int64)}
	tracker := NewOffsetTracker(c.commit)
	tracker.Track(message(0, 5))
	tracker.Track(message(1, 7))
	tracker.Track(message(0, 6))

	// медленное сообщение одной партиции не задерживает другую
	require.NoError(t, tracker.Done(ctx, message(1, 7)))
	require.NoError(t, tracker.Done(ctx, message(0, 6)))
	require.Equal(t, []int64{7}, c.offsets[1])
	require.Empty(t, c.offsets[0])

	require.NoError(t, tracker.Done(ctx, message(0, 5)))
	require.Equal(t, []int64{6}, c.offsets[0])
}

func TestOffsetTrackerErrors(t *testing.T) {
	ctx := context.Background()
	c := &committed{offsets: make(map[int][]int64), err: errors.New("broker is down")}
	tracker := NewOffsetTracker(c.commit)

	require.Error(t, tracker.Done(ctx, message(0, 1)))

	tracker.Track(message(0, 1))
	require.Error(t, tracker.Done(ctx, message(0, 1)))

	// следующий коммит покрывает неудачный
	c.err = nil
	tracker.Track(message(0, 2))
	require.NoError(t, tracker.Done(ctx, message(0, 2)))
	require.Equal(t, []int64{2}, c.offsets[0])
}

package rewards

import (
	"context"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
)

type partitionKey struct {
	topic     string
	partition int
}

type partitionOffsets struct {
	pending []kafka.Message // в порядке чтения
	done    map[int64]bool
}

// Коммит смещений при параллельной обработке. Смещение партиции сдвигается только
// до последнего сообщения непрерывного обработанного префикса, поэтому после
// перезапуска не теряются сообщения, которые еще обрабатываются
type OffsetTracker struct {
	mu         sync.Mutex
	commit     func(ctx context.Context, msg kafka.Message) error
	partitions map[partitionKey]*partitionOffsets
}

func NewOffsetTracker(commit func(ctx context.Context, msg kafka.Message) error) *OffsetTracker {
	return &OffsetTracker{
		commit:     commit,
		partitions: make(map[partitionKey]*partitionOffsets),
	}
}

// Вызывается в порядке Fetch, до передачи сообщения обработчику
func (o *OffsetTracker) Track(msg kafka.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	key := partitionKey{msg.Topic, msg.Partition}
	p, ok := o.partitions[key]
	if !ok {
		p = &partitionOffsets{done: make(map[int64]bool)}
		o.partitions[key] = p
	}
	p.pending = append(p.pending, msg)
}

// Сообщение обработано. Коммитит смещение, если префикс партиции вырос
func (o *OffsetTracker) Done(ctx context.Context, msg kafka.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	p, ok := o.partitions[partitionKey{msg.Topic, msg.Partition}]
	if !ok {
		return fmt.Errorf("offset %d of partition %d is not tracked", msg.Offset, msg.Partition)
	}
	p.done[msg.Offset] = true

	var last *kafka.Message
	for len(p.pending) > 0 && p.done[p.pending[0].Offset] {
		last = &p.pending[0]
		delete(p.done, last.Offset)
		p.pending = p.pending[1:]
	}
	if last == nil {
		return nil
	}
	// под блокировкой: коммиты партиции не обгоняют друг друга
	return o.commit(ctx, *last)
}

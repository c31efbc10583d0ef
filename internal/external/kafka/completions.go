package rewards

import (
	"context"
	"encoding/json"
	"fmt"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/segmentio/kafka-go"
)

type CompletionReader struct {
	reader *kafka.Reader
}

func NewCompletionReader(brokers []string, topic string, group string) (*CompletionReader, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not set")
	}
	config := kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	}
	return &CompletionReader{kafka.NewReader(config)}, nil
}

// Сообщение из топика. Смещение коммитится через Commit после обработки
func (k *CompletionReader) Fetch(ctx context.Context) (kafka.Message, error) {
	return k.reader.FetchMessage(ctx)
}

func (k *CompletionReader) Commit(ctx context.Context, msg kafka.Message) error {
	return k.reader.CommitMessages(ctx, msg)
}

func (k *CompletionReader) Close() error {
	return k.reader.Close()
}

// Событие завершения из тела сообщения
func DecodeCompletion(msg kafka.Message) (model.CompletionEvent, error) {
	event := model.CompletionEvent{}
	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return event, fmt.Errorf("decode completion at offset %d: %w", msg.Offset, err)
	}
	return event, nil
}

package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

// PublishVacationEvent writes the event keyed by vacation id so that events
// of one vacation land in one partition. Failures are logged, not returned.
func (p *Producer) PublishVacationEvent(ctx context.Context, event entity.VacationEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.VacationID, 10)),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Discard drops every event. Used when Kafka is disabled.
type Discard struct{}

func (Discard) PublishVacationEvent(context.Context, entity.VacationEvent) {}

func (Discard) Close() {}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

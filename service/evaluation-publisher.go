package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"staffeval/metrics"
	"staffeval/repository"
	"time"

	"github.com/segmentio/kafka-go"
)

// EvaluationPublisher is told about every committed submission.
type EvaluationPublisher interface {
	Publish(ctx context.Context, evaluations []*repository.Evaluation) error
}

type NoopEvaluationPublisher struct{}

func (NoopEvaluationPublisher) Publish(ctx context.Context, evaluations []*repository.Evaluation) error {
	return nil
}

type SubmittedScore struct {
	QuestionId int     `json:"question_id"`
	Point      float64 `json:"point"`
}

type EvaluationSubmittedMessage struct {
	ReviewerId int              `json:"reviewer_id"`
	SubjectId  int              `json:"subject_id"`
	GroupId    int              `json:"group_id"`
	ModifiedAt time.Time        `json:"modified_at"`
	Scores     []SubmittedScore `json:"scores"`
}

// ToSubmittedMessage summarises the rows of one submission. evaluations must not be empty.
func ToSubmittedMessage(evaluations []*repository.Evaluation) EvaluationSubmittedMessage {
	first := evaluations[0]
	message := EvaluationSubmittedMessage{
		ReviewerId: first.ReviewerID,
		SubjectId:  first.SubjectID,
		GroupId:    first.GroupID,
		ModifiedAt: first.ModifiedAt,
		Scores:     make([]SubmittedScore, 0, len(evaluations)),
	}
	for _, evaluation := range evaluations {
		message.Scores = append(message.Scores, SubmittedScore{QuestionId: evaluation.QuestionID, Point: evaluation.Point})
	}
	return message
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaEvaluationPublisher struct {
	writer messageWriter
}

// NewKafkaEvaluationPublisher switches writer to async mode so a submission never
// waits on the broker. Delivery failures are reported through the completion callback.
func NewKafkaEvaluationPublisher(writer *kafka.Writer) *KafkaEvaluationPublisher {
	writer.Async = true
	writer.Completion = reportDelivery
	return &KafkaEvaluationPublisher{writer: writer}
}

func reportDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	metrics.PublishErrorCounter.Add(float64(len(messages)))
	for _, message := range messages {
		log.Printf("could not deliver evaluation event %s: %v", message.Key, err)
	}
}

func (p *KafkaEvaluationPublisher) Publish(ctx context.Context, evaluations []*repository.Evaluation) error {
	if len(evaluations) == 0 {
		return nil
	}
	message := ToSubmittedMessage(evaluations)
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%d-%d-%d", message.ReviewerId, message.SubjectId, message.GroupId)
	// detached from the request, the rows are already committed
	return p.writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{Key: []byte(key), Value: data})
}

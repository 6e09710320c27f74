package service

import (
	"context"
	"encoding/json"
	"errors"
	"staffeval/metrics"
	"staffeval/repository"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	messages []kafka.Message
	ctxErrs  []error
}

func (w *capturingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	w.ctxErrs = append(w.ctxErrs, ctx.Err())
	return nil
}

func TestKafkaPublisherWritesOneMessagePerSubmission(t *testing.T) {
	writer := &capturingWriter{}
	publisher := &KafkaEvaluationPublisher{writer: writer}
	modifiedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	evaluations := []*repository.Evaluation{
		{ReviewerID: 1, SubjectID: 2, GroupID: 3, QuestionID: 1, Point: 4, ModifiedAt: modifiedAt},
		{ReviewerID: 1, SubjectID: 2, GroupID: 3, QuestionID: 2, Point: 5.5, ModifiedAt: modifiedAt},
	}

	require.NoError(t, publisher.Publish(context.Background(), evaluations))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "1-2-3", string(writer.messages[0].Key))

	var message EvaluationSubmittedMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &message))
	assert.Equal(t, 2, message.SubjectId)
	assert.True(t, modifiedAt.Equal(message.ModifiedAt))
	assert.Equal(t, []SubmittedScore{{QuestionId: 1, Point: 4}, {QuestionId: 2, Point: 5.5}}, message.Scores)
}

func TestKafkaPublisherSkipsEmptySubmission(t *testing.T) {
	writer := &capturingWriter{}
	publisher := &KafkaEvaluationPublisher{writer: writer}
	require.NoError(t, publisher.Publish(context.Background(), nil))
	assert.Empty(t, writer.messages)
}

func TestKafkaPublisherOutlivesTheRequestContext(t *testing.T) {
	writer := &capturingWriter{}
	publisher := &KafkaEvaluationPublisher{writer: writer}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, publisher.Publish(ctx, []*repository.Evaluation{{ReviewerID: 1, SubjectID: 2, GroupID: 3, QuestionID: 1, Point: 4}}))
	require.Len(t, writer.ctxErrs, 1)
	assert.NoError(t, writer.ctxErrs[0])
}

func TestNewKafkaPublisherDoesNotBlockSubmissions(t *testing.T) {
	writer := &kafka.Writer{Addr: kafka.TCP("127.0.0.1:1"), Topic: "evaluations-submitted"}
	defer writer.Close()
	NewKafkaEvaluationPublisher(writer)

	assert.True(t, writer.Async)
	require.NotNil(t, writer.Completion)

	before := testutil.ToFloat64(metrics.PublishErrorCounter)
	writer.Completion([]kafka.Message{{Key: []byte("1-2-3")}, {Key: []byte("1-2-4")}}, errors.New("broker down"))
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.PublishErrorCounter))

	writer.Completion([]kafka.Message{{Key: []byte("1-2-3")}}, nil)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.PublishErrorCounter))
}

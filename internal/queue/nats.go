package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
)

// NATSQueue backs the priority lanes with a JetStream work queue: one
// subject per lane under a shared stream, durable pull consumers, explicit
// acks. An item a worker dies holding is redelivered after the ack wait
// elapses, which is where the pipeline's at-least-once contract comes from.
type NATSQueue struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	logger *slog.Logger

	stream string
	prefix string
	subs   map[constants.Lane]*nats.Subscription
}

func NewNATSQueue(cfg common.QueueConfig, logger *slog.Logger) (*NATSQueue, error) {
	if logger == nil {
		logger = slog.Default()
	}
	nc, err := nats.Connect(cfg.NATSURL, nats.Name("riskscore"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("open JetStream context: %w", err)
	}

	q := &NATSQueue{
		nc:     nc,
		js:     js,
		logger: logger,
		stream: cfg.StreamName,
		prefix: cfg.SubjectPrefix,
		subs:   make(map[constants.Lane]*nats.Subscription, len(constants.LanesByPriority)),
	}

	if _, err := js.AddStream(&nats.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{cfg.SubjectPrefix + ".*"},
		Retention: nats.WorkQueuePolicy,
		Storage:   nats.FileStorage,
	}); err != nil && !strings.Contains(err.Error(), "already in use") {
		nc.Close()
		return nil, fmt.Errorf("ensure stream %s: %w", cfg.StreamName, err)
	}

	for _, lane := range constants.LanesByPriority {
		sub, err := js.PullSubscribe(
			q.subject(lane),
			q.durable(lane),
			nats.AckWait(cfg.AckWait),
			nats.AckExplicit(),
		)
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("subscribe lane %s: %w", lane, err)
		}
		q.subs[lane] = sub
	}

	logger.Info("queue lanes ready", "stream", cfg.StreamName, "subject_prefix", cfg.SubjectPrefix)
	return q, nil
}

func (q *NATSQueue) subject(lane constants.Lane) string {
	return q.prefix + "." + strings.ToLower(string(lane))
}

func (q *NATSQueue) durable(lane constants.Lane) string {
	return "workers-" + strings.ToLower(string(lane))
}

func (q *NATSQueue) Enqueue(ctx context.Context, item entity.WorkItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal work item: %w", err)
	}
	if _, err := q.js.Publish(q.subject(item.Lane), data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("%w: publish to lane %s: %v", common.ErrFatal, item.Lane, err)
	}
	q.logger.Debug("work item enqueued", "job_id", item.JobID, "lane", item.Lane, "rows", item.Rows())
	return nil
}

func (q *NATSQueue) Dequeue(ctx context.Context, lane constants.Lane) (*Delivery, error) {
	sub, ok := q.subs[lane]
	if !ok {
		return nil, fmt.Errorf("unknown lane %q", lane)
	}

	msgs, err := sub.Fetch(1, nats.MaxWait(100*time.Millisecond))
	if err != nil {
		if err == nats.ErrTimeout || err == context.DeadlineExceeded {
			return nil, nil // lane empty
		}
		return nil, fmt.Errorf("%w: fetch from lane %s: %v", common.ErrFatal, lane, err)
	}
	if len(msgs) == 0 {
		return nil, nil
	}
	msg := msgs[0]

	var item entity.WorkItem
	if err := json.Unmarshal(msg.Data, &item); err != nil {
		// Poison message: ack it away so it cannot wedge the lane.
		q.logger.Error("dropping undecodable work item", "lane", lane, "err", err)
		_ = msg.Ack()
		return nil, nil
	}

	return &Delivery{
		Item: item,
		Ack:  func() error { return msg.Ack() },
		Nak:  func() error { return msg.Nak() },
	}, nil
}

func (q *NATSQueue) Depths(_ context.Context) (map[constants.Lane]int, error) {
	depths := make(map[constants.Lane]int, len(constants.LanesByPriority))
	for _, lane := range constants.LanesByPriority {
		info, err := q.js.ConsumerInfo(q.stream, q.durable(lane))
		if err != nil {
			return nil, fmt.Errorf("consumer info for lane %s: %w", lane, err)
		}
		depths[lane] = int(info.NumPending) + info.NumAckPending
	}
	return depths, nil
}

func (q *NATSQueue) Shutdown(_ context.Context) {
	for lane, sub := range q.subs {
		if err := sub.Drain(); err != nil {
			q.logger.Warn("drain lane subscription", "lane", lane, "err", err)
		}
	}
	q.nc.Close()
	q.logger.Info("queue connection closed")
}

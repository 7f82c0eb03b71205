package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ContactBook/internal/modules/contact/infrastructure/mq"

	"github.com/IBM/sarama"
)

// ProducerConfig 对应配置里的 [kafkaConfig]
type ProducerConfig struct {
	Brokers  []string
	ClientID string
	// Version broker 协议版本，如 "2.8.0"，留空用默认值
	Version string
}

var defaultVersion = sarama.V2_8_0_0

type syncProducer struct {
	sp sarama.SyncProducer
}

func NewProducer(cfg ProducerConfig) (mq.Producer, error) {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}

	sc, err := saramaConfig(cfg)
	if err != nil {
		return nil, err
	}
	sp, err := sarama.NewSyncProducer(brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka: connect %v: %w", brokers, err)
	}
	return &syncProducer{sp: sp}, nil
}

func saramaConfig(cfg ProducerConfig) (*sarama.Config, error) {
	sc := sarama.NewConfig()
	sc.Version = defaultVersion
	if v := strings.TrimSpace(cfg.Version); v != "" {
		parsed, err := sarama.ParseKafkaVersion(v)
		if err != nil {
			return nil, fmt.Errorf("kafka: version %q: %w", v, err)
		}
		sc.Version = parsed
	}
	if id := strings.TrimSpace(cfg.ClientID); id != "" {
		sc.ClientID = id
	}

	// 幂等投递要求 acks=all 且单连接只有一个在途请求
	sc.Producer.Idempotent = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Retry.Max = 5
	sc.Producer.Retry.Backoff = 200 * time.Millisecond
	sc.Producer.Return.Successes = true
	// 同一手机号进同一分区，单个联系人的事件保持有序
	sc.Producer.Partitioner = sarama.NewHashPartitioner

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("kafka: producer config: %w", err)
	}
	return sc, nil
}

func (p *syncProducer) Send(ctx context.Context, rec mq.Record) (mq.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return mq.Receipt{}, err
	}
	if strings.TrimSpace(rec.Topic) == "" {
		return mq.Receipt{}, errors.New("kafka: topic is empty")
	}

	partition, offset, err := p.sp.SendMessage(toProducerMessage(rec))
	if err != nil {
		return mq.Receipt{}, fmt.Errorf("kafka: send to %s: %w", rec.Topic, err)
	}
	return mq.Receipt{Topic: rec.Topic, Partition: partition, Offset: offset}, nil
}

func (p *syncProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

// toProducerMessage 空 key 不设置，交给分区器随机分配；空名字的 header 丢弃
func toProducerMessage(rec mq.Record) *sarama.ProducerMessage {
	msg := &sarama.ProducerMessage{
		Topic: rec.Topic,
		Value: sarama.ByteEncoder(rec.Value),
	}
	if len(rec.Key) > 0 {
		msg.Key = sarama.ByteEncoder(rec.Key)
	}
	for _, h := range rec.Headers {
		if h.Key == "" {
			continue
		}
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(h.Key), Value: []byte(h.Value)})
	}
	return msg
}
